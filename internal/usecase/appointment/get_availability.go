package appointment

import (
	"context"

	domain "github.com/matheusvf/barber-agenda/internal/domain/appointment"
	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
	"github.com/matheusvf/barber-agenda/internal/httperr"
	"github.com/matheusvf/barber-agenda/internal/timezone"
)

type GetAvailability struct {
	repo        domain.Repository
	resolver    *schedule.Resolver
	granularity int // minutes between candidate starts
}

func NewGetAvailability(
	repo domain.Repository,
	resolver *schedule.Resolver,
	granularityMin int,
) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		resolver:    resolver,
		granularity: granularityMin,
	}
}

// Execute computes the slot list for one barber and date from the latest
// committed state. A closed day is an empty list, not an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_inactive")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	dayStart, dayEnd := timezone.DayBounds(in.Date)

	now := timezone.Now()
	if !dayEnd.After(now) {
		// The whole day is in the past.
		return []domain.TimeSlot{}, nil
	}

	weekly, err := uc.repo.ListDaySchedules(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	exceptions, err := uc.repo.ListExceptionsForDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	plan := uc.resolver.Resolve(in.Date, weekly, exceptions)
	if plan.Closed() {
		return []domain.TimeSlot{}, nil
	}

	existing, err := uc.repo.ListActiveAppointments(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.Interval, 0, len(existing))
	for _, ap := range existing {
		busy = append(busy, schedule.Interval{
			Start: schedule.Minutes(timezone.MinutesOfDay(ap.StartTime)),
			End:   schedule.Minutes(timezone.MinutesOfDay(ap.EndTime)),
		})
	}

	var nowMin *schedule.Minutes
	if timezone.SameDate(in.Date, now) {
		m := schedule.Minutes(timezone.MinutesOfDay(now))
		nowMin = &m
	}

	return domain.GenerateSlots(
		plan.Open,
		service.DurationMin,
		uc.granularity,
		busy,
		nowMin,
	), nil
}
