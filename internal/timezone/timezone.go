package timezone

import (
	"fmt"
	"time"
)

// The operating zone is a constant UTC offset, so every conversion between
// wall-clock values and instants goes through the same *time.Location. There
// is no DST in the operating zone; Configure is called once at startup.

const (
	DefaultName      = "America/Sao_Paulo"
	DefaultOffsetMin = -180
)

var loc = time.FixedZone(DefaultName, DefaultOffsetMin*60)

func Configure(name string, offsetMin int) {
	if name == "" {
		name = DefaultName
	}
	loc = time.FixedZone(name, offsetMin*60)
}

func Location() *time.Location {
	return loc
}

func Now() time.Time {
	return time.Now().In(loc)
}

// ParseDate reads a YYYY-MM-DD calendar date as midnight in the operating zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}

// At combines a calendar date with minutes since midnight into an instant.
func At(date time.Time, minutes int) time.Time {
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, minutes, 0, 0, loc)
}

// MinutesOfDay is the inverse of At for instants on the same calendar date.
func MinutesOfDay(t time.Time) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// DayBounds returns [midnight, next midnight) for the date's calendar day.
func DayBounds(date time.Time) (time.Time, time.Time) {
	d := date.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func SameDate(a, b time.Time) bool {
	al, bl := a.In(loc), b.In(loc)
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

func FormatDate(t time.Time) string {
	return t.In(loc).Format("2006-01-02")
}

func FormatClock(t time.Time) string {
	return t.In(loc).Format("15:04")
}

func String() string {
	_, offset := time.Now().In(loc).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s (UTC%s%02d:%02d)", loc.String(), sign, offset/3600, (offset%3600)/60)
}
