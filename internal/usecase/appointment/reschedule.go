package appointment

import (
	"context"
	"time"

	"github.com/matheusvf/barber-agenda/internal/audit"
	"github.com/matheusvf/barber-agenda/internal/domain/appointment"
	domain "github.com/matheusvf/barber-agenda/internal/domain/appointment"
	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
	"github.com/matheusvf/barber-agenda/internal/httperr"
	"github.com/matheusvf/barber-agenda/internal/models"
	"github.com/matheusvf/barber-agenda/internal/timezone"
)

type RescheduleAppointment struct {
	repo     domain.Repository
	resolver *schedule.Resolver
	audit    *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	resolver *schedule.Resolver,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

// Execute moves an appointment to a new start. The new slot goes through the
// same in-transaction re-validation as creation, with the appointment itself
// excluded from the overlap check.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newStart time.Time,
) (*models.Appointment, error) {

	current, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := appointment.CanReschedule(appointment.Status(current.Status)); err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, current.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start := newStart.In(timezone.Location()).Truncate(time.Minute)

	var ap *models.Appointment

	err = uc.repo.RunInBarberTx(ctx, current.BarberID, func(tx domain.Repository) error {
		ap, err = tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := validateSlot(
			ctx, tx, uc.resolver,
			ap.BarberID, start, service.DurationMin, ap.ID,
		); err != nil {
			return err
		}

		now := timezone.Now()
		if err := appointment.Reschedule(ap, start, service.DurationMin, now); err != nil {
			return err
		}

		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
