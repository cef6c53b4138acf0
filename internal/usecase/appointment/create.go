package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matheusvf/barber-agenda/internal/audit"
	domain "github.com/matheusvf/barber-agenda/internal/domain/appointment"
	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
	"github.com/matheusvf/barber-agenda/internal/httperr"
	"github.com/matheusvf/barber-agenda/internal/models"
	"github.com/matheusvf/barber-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID  uint
	ServiceID uint

	// Zone-qualified instant chosen by the client.
	Start time.Time

	ClientName  string
	ClientPhone string
	ClientEmail string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	resolver *schedule.Resolver
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	resolver *schedule.Resolver,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

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

	// Bookings are minute-precise in the operating zone.
	start := in.Start.In(timezone.Location()).Truncate(time.Minute)
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	var ap *models.Appointment

	// Re-validation and insert are one transaction, serialized per barber:
	// two concurrent requests for the same slot cannot both pass the check.
	err = uc.repo.RunInBarberTx(ctx, in.BarberID, func(tx domain.Repository) error {
		if err := validateSlot(
			ctx, tx, uc.resolver,
			in.BarberID, start, service.DurationMin, 0,
		); err != nil {
			return err
		}

		ap = &models.Appointment{
			Code:      uuid.New(),
			BarberID:  in.BarberID,
			ServiceID: service.ID,
			ClientID:  client.ID,
			StartTime: start,
			EndTime:   end,
			Status:    string(domain.InitialStatus()),
			Notes:     in.Notes,
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &in.BarberID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
