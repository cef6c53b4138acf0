package schedule

import "testing"

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock error: %v", err)
	}
	if m != 570 {
		t.Fatalf("expected 570, got %d", m)
	}
	if m.Clock() != "09:30" {
		t.Fatalf("round trip failed: %s", m.Clock())
	}

	for _, bad := range []string{"", "9:30", "24:00", "12:60", "ab:cd", "12-30"} {
		if _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	a := Interval{Start: 540, End: 600} // 09:00-10:00
	b := Interval{Start: 600, End: 660} // 10:00-11:00

	if a.Overlaps(b) {
		t.Fatalf("touching intervals must not overlap")
	}

	c := Interval{Start: 570, End: 630}
	if !a.Overlaps(c) || !c.Overlaps(a) {
		t.Fatalf("expected overlap")
	}
}

func TestCoalesceMergesTouchingAndOverlapping(t *testing.T) {
	in := []Interval{
		{Start: 780, End: 840}, // 13:00-14:00
		{Start: 600, End: 660}, // 10:00-11:00
		{Start: 660, End: 690}, // 11:00-11:30 (touching)
		{Start: 650, End: 680}, // overlapping
	}

	out := Coalesce(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 intervals, got %v", out)
	}
	if out[0] != (Interval{Start: 600, End: 690}) {
		t.Fatalf("unexpected first interval: %v", out[0])
	}
	if out[1] != (Interval{Start: 780, End: 840}) {
		t.Fatalf("unexpected second interval: %v", out[1])
	}
}

func TestCoalesceDropsInvalid(t *testing.T) {
	out := Coalesce([]Interval{
		{Start: 600, End: 600},
		{Start: 700, End: 650},
	})
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}

func TestSubtractSplitsWindow(t *testing.T) {
	window := Interval{Start: 540, End: 1080}          // 09:00-18:00
	breaks := []Interval{{Start: 780, End: 840}}       // 13:00-14:00

	open := Subtract(window, breaks)
	if len(open) != 2 {
		t.Fatalf("expected 2 open intervals, got %v", open)
	}
	if open[0] != (Interval{Start: 540, End: 780}) || open[1] != (Interval{Start: 840, End: 1080}) {
		t.Fatalf("unexpected intervals: %v", open)
	}
}

func TestSubtractTruncatesAtEdges(t *testing.T) {
	window := Interval{Start: 540, End: 1080}

	open := Subtract(window, []Interval{
		{Start: 540, End: 600},  // hugs the start
		{Start: 1020, End: 1080}, // hugs the end
	})
	if len(open) != 1 {
		t.Fatalf("expected 1 open interval, got %v", open)
	}
	if open[0] != (Interval{Start: 600, End: 1020}) {
		t.Fatalf("unexpected interval: %v", open[0])
	}
}

func TestSubtractInvalidWindow(t *testing.T) {
	if open := Subtract(Interval{Start: 600, End: 600}, nil); open != nil {
		t.Fatalf("zero-length window must be closed, got %v", open)
	}
	if open := Subtract(Interval{Start: 700, End: 600}, nil); open != nil {
		t.Fatalf("inverted window must be closed, got %v", open)
	}
}

func TestSubtractBreakCoveringWholeWindow(t *testing.T) {
	window := Interval{Start: 540, End: 720}
	open := Subtract(window, []Interval{{Start: 540, End: 720}})
	if len(open) != 0 {
		t.Fatalf("expected closed day, got %v", open)
	}
}
