package appointment

import (
	"context"
	"time"

	"github.com/matheusvf/barber-agenda/internal/models"
)

type Repository interface {
	// -------- Service / Barber --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Schedule (read-only to the booking flow) --------
	ListDaySchedules(
		ctx context.Context,
		barberID uint,
	) ([]models.DaySchedule, error)

	ListExceptionsForDate(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.ScheduleException, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment --------
	ListActiveAppointments(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Atomicity --------
	// RunInBarberTx executes fn inside one transaction serialized against
	// other booking transactions for the same barber. Bookings for
	// different barbers never contend.
	RunInBarberTx(
		ctx context.Context,
		barberID uint,
		fn func(tx Repository) error,
	) error
}
