package appointment

import (
	"context"
	"time"

	domain "github.com/matheusvf/barber-agenda/internal/domain/appointment"
	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
	"github.com/matheusvf/barber-agenda/internal/httperr"
	"github.com/matheusvf/barber-agenda/internal/timezone"
)

// validateSlot re-runs the availability decision for one concrete start
// against the current committed state: the day's open intervals must fully
// contain the slot, the start must be strictly in the future, and no active
// appointment of the barber may overlap it. It is called inside the booking
// transaction so the decision and the insert are indivisible. excludeID
// skips one appointment in the overlap check (the one being rescheduled).
func validateSlot(
	ctx context.Context,
	tx domain.Repository,
	resolver *schedule.Resolver,
	barberID uint,
	start time.Time,
	durationMin int,
	excludeID uint,
) error {

	if !start.After(timezone.Now()) {
		return httperr.ErrBusiness("slot_unavailable")
	}

	weekly, err := tx.ListDaySchedules(ctx, barberID)
	if err != nil {
		return err
	}

	exceptions, err := tx.ListExceptionsForDate(ctx, barberID, start)
	if err != nil {
		return err
	}

	plan := resolver.Resolve(start, weekly, exceptions)
	if plan.Closed() {
		return httperr.ErrBusiness("slot_unavailable")
	}

	slot := schedule.Interval{
		Start: schedule.Minutes(timezone.MinutesOfDay(start)),
		End:   schedule.Minutes(timezone.MinutesOfDay(start) + durationMin),
	}

	fits := false
	for _, iv := range plan.Open {
		if iv.Contains(slot) {
			fits = true
			break
		}
	}
	if !fits {
		return httperr.ErrBusiness("slot_unavailable")
	}

	dayStart, dayEnd := timezone.DayBounds(start)
	existing, err := tx.ListActiveAppointments(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)
	for _, ap := range existing {
		if ap.ID == excludeID {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	return nil
}
