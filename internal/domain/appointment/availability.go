package appointment

import (
	"time"

	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

// TimeSlot is derived per query and never persisted. Slots blocked by an
// existing appointment are still emitted (available=false) so callers can
// render them as taken; past-time slots are not emitted at all.
type TimeSlot struct {
	StartTime string `json:"start_time"` // HH:mm
	Available bool   `json:"available"`
}

// GenerateSlots enumerates candidate starts inside each open interval:
// granularity steps from the interval start, plus the latest start that
// still fits (end-duration) so the tail of a window stays bookable. A
// candidate must fit entirely inside its own interval. busy holds the
// barber's active appointments as wall-clock intervals; now, when non-nil,
// marks a same-day query and drops candidates not strictly in the future.
func GenerateSlots(
	open []schedule.Interval,
	durationMin int,
	granularityMin int,
	busy []schedule.Interval,
	now *schedule.Minutes,
) []TimeSlot {

	if durationMin <= 0 || granularityMin <= 0 {
		return []TimeSlot{}
	}

	duration := schedule.Minutes(durationMin)
	granularity := schedule.Minutes(granularityMin)

	slots := []TimeSlot{}

	for _, iv := range open {
		if !iv.Valid() {
			continue
		}

		last := schedule.Minutes(-1)
		for cur := iv.Start; cur+duration <= iv.End; cur += granularity {
			slots = appendSlot(slots, cur, duration, busy, now)
			last = cur
		}

		// Tail candidate: the final start that exactly fills the window.
		if tail := iv.End - duration; tail >= iv.Start && tail > last {
			slots = appendSlot(slots, tail, duration, busy, now)
		}
	}

	return slots
}

func appendSlot(
	slots []TimeSlot,
	start schedule.Minutes,
	duration schedule.Minutes,
	busy []schedule.Interval,
	now *schedule.Minutes,
) []TimeSlot {

	if now != nil && start <= *now {
		return slots
	}

	candidate := schedule.Interval{Start: start, End: start + duration}

	available := true
	for _, b := range busy {
		if candidate.Overlaps(b) {
			available = false
			break
		}
	}

	return append(slots, TimeSlot{
		StartTime: start.Clock(),
		Available: available,
	})
}
