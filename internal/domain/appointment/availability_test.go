package appointment

import (
	"testing"

	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
)

func minutes(clock string) schedule.Minutes {
	m, err := schedule.ParseClock(clock)
	if err != nil {
		panic(err)
	}
	return m
}

func interval(start, end string) schedule.Interval {
	return schedule.Interval{Start: minutes(start), End: minutes(end)}
}

func slotByStart(slots []TimeSlot, start string) *TimeSlot {
	for i := range slots {
		if slots[i].StartTime == start {
			return &slots[i]
		}
	}
	return nil
}

// Monday 09:00-18:00, break 13:00-14:00, 30-minute granularity, 45-minute
// service: the last morning start is 12:15 (ends exactly at the break) and
// the first afternoon start is 14:00.
func TestGenerateSlotsAroundBreak(t *testing.T) {
	open := []schedule.Interval{
		interval("09:00", "13:00"),
		interval("14:00", "18:00"),
	}

	slots := GenerateSlots(open, 45, 30, nil, nil)
	if len(slots) == 0 {
		t.Fatalf("expected slots")
	}

	if s := slotByStart(slots, "12:15"); s == nil || !s.Available {
		t.Fatalf("expected available 12:15 slot, got %v", slots)
	}
	if s := slotByStart(slots, "12:30"); s != nil {
		t.Fatalf("12:30 would cross the break, must not be emitted")
	}
	if s := slotByStart(slots, "12:45"); s != nil {
		t.Fatalf("12:45 would cross the break, must not be emitted")
	}
	if s := slotByStart(slots, "14:00"); s == nil || !s.Available {
		t.Fatalf("expected available 14:00 slot")
	}

	// no slot may leak past the working window
	if s := slotByStart(slots, "17:30"); s != nil {
		t.Fatalf("17:30 + 45min exceeds 18:00, must not be emitted")
	}
	if s := slotByStart(slots, "17:15"); s == nil {
		t.Fatalf("expected 17:15 tail slot (ends exactly at 18:00)")
	}
}

func TestGenerateSlotsMarksConflictsUnavailable(t *testing.T) {
	open := []schedule.Interval{interval("09:00", "13:00")}
	busy := []schedule.Interval{interval("10:00", "10:45")}

	slots := GenerateSlots(open, 45, 30, busy, nil)

	if s := slotByStart(slots, "09:00"); s == nil || !s.Available {
		t.Fatalf("09:00 ends 09:45, must be available")
	}
	if s := slotByStart(slots, "09:30"); s == nil || s.Available {
		t.Fatalf("09:30 ends 10:15, must be emitted as unavailable")
	}
	if s := slotByStart(slots, "10:30"); s == nil || s.Available {
		t.Fatalf("10:30 overlaps 10:00-10:45, must be unavailable")
	}
	if s := slotByStart(slots, "11:00"); s == nil || !s.Available {
		t.Fatalf("11:00 is clear, must be available")
	}
}

func TestGenerateSlotsDropsPastStarts(t *testing.T) {
	open := []schedule.Interval{interval("09:00", "18:00")}
	now := minutes("17:00")

	slots := GenerateSlots(open, 30, 30, nil, &now)

	if s := slotByStart(slots, "17:00"); s != nil {
		t.Fatalf("slot at the current minute must be excluded")
	}
	if s := slotByStart(slots, "16:30"); s != nil {
		t.Fatalf("past slot must be excluded")
	}
	if s := slotByStart(slots, "17:30"); s == nil || !s.Available {
		t.Fatalf("expected 17:30 slot")
	}
	if len(slots) != 1 {
		t.Fatalf("expected exactly one slot, got %v", slots)
	}
}

func TestGenerateSlotsChronologicalOrder(t *testing.T) {
	open := []schedule.Interval{
		interval("09:00", "12:00"),
		interval("14:00", "16:00"),
	}

	slots := GenerateSlots(open, 30, 30, nil, nil)
	for i := 1; i < len(slots); i++ {
		if slots[i-1].StartTime >= slots[i].StartTime {
			t.Fatalf("slots out of order: %v", slots)
		}
	}
}

func TestGenerateSlotsIntervalShorterThanService(t *testing.T) {
	open := []schedule.Interval{interval("09:00", "09:30")}

	slots := GenerateSlots(open, 45, 30, nil, nil)
	if len(slots) != 0 {
		t.Fatalf("no slot fits a 30-minute window, got %v", slots)
	}
}

func TestGenerateSlotsInvalidConfig(t *testing.T) {
	open := []schedule.Interval{interval("09:00", "18:00")}

	if slots := GenerateSlots(open, 0, 30, nil, nil); len(slots) != 0 {
		t.Fatalf("zero duration must yield no slots")
	}
	if slots := GenerateSlots(open, 30, 0, nil, nil); len(slots) != 0 {
		t.Fatalf("zero granularity must yield no slots")
	}
}
