package schedule

import (
	"fmt"
	"sort"
	"strconv"
)

// Minutes since midnight in the operating zone. Wall-clock "HH:mm" values
// are parsed into this form once and all interval algebra runs on ints.
type Minutes int

// Interval is a half-open [Start, End) span of wall-clock minutes.
type Interval struct {
	Start Minutes
	End   Minutes
}

// ParseClock reads a "HH:mm" value (00:00 .. 23:59).
func ParseClock(s string) (Minutes, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, errH := strconv.Atoi(s[:2])
	m, errM := strconv.Atoi(s[3:])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return Minutes(h*60 + m), nil
}

func (m Minutes) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Valid rejects zero-length and inverted spans.
func (iv Interval) Valid() bool {
	return iv.Start < iv.End
}

// Overlaps is the half-open overlap test: aStart < bEnd && bStart < aEnd.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

// Contains reports whether o lies entirely inside iv.
func (iv Interval) Contains(o Interval) bool {
	return iv.Start <= o.Start && o.End <= iv.End
}

func (iv Interval) String() string {
	return iv.Start.Clock() + "-" + iv.End.Clock()
}

// Coalesce sorts intervals and merges touching or overlapping ones into
// their union. Invalid entries are dropped.
func Coalesce(ivs []Interval) []Interval {
	var in []Interval
	for _, iv := range ivs {
		if iv.Valid() {
			in = append(in, iv)
		}
	}
	if len(in) == 0 {
		return nil
	}

	sort.Slice(in, func(i, j int) bool { return in[i].Start < in[j].Start })

	out := []Interval{in[0]}
	for _, iv := range in[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Subtract removes the break intervals from the working window, splitting it
// as needed. Breaks are coalesced first; breaks hugging the window edge just
// truncate it. The result is ordered and non-overlapping.
func Subtract(window Interval, breaks []Interval) []Interval {
	if !window.Valid() {
		return nil
	}

	var open []Interval
	cur := window.Start

	for _, b := range Coalesce(breaks) {
		if b.End <= cur || b.Start >= window.End {
			continue
		}
		if b.Start > cur {
			open = append(open, Interval{Start: cur, End: b.Start})
		}
		if b.End > cur {
			cur = b.End
		}
	}

	if cur < window.End {
		open = append(open, Interval{Start: cur, End: window.End})
	}
	return open
}
