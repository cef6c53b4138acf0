package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/matheusvf/barber-agenda/internal/domain/appointment"
	"github.com/matheusvf/barber-agenda/internal/httperr"
	"github.com/matheusvf/barber-agenda/internal/models"
)

// Lock class for pg_advisory_xact_lock: booking transactions share the
// barber id as the second key, so they serialize per barber only.
const bookingLockClass = 4201

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service / Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) ListDaySchedules(
	ctx context.Context,
	barberID uint,
) ([]models.DaySchedule, error) {

	var days []models.DaySchedule
	if err := r.db.WithContext(ctx).
		Preload("Breaks", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}

	return days, nil
}

func (r *AppointmentGormRepository) ListExceptionsForDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.ScheduleException, error) {

	var excs []models.ScheduleException
	if err := r.db.WithContext(ctx).
		Preload("Breaks", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Where("barber_id = ? AND date = ?", barberID, date.Format("2006-01-02")).
		Find(&excs).Error; err != nil {
		return nil, err
	}

	return excs, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveAppointments(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"barber_id = ? AND status IN ('scheduled', 'rescheduled') AND start_time < ? AND end_time > ?",
			barberID, end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// Unique live-slot index backstop: the exact same start was taken
		// between check and insert (only possible outside the barber lock).
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return httperr.ErrBusiness("slot_unavailable")
		}
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Atomicity
// --------------------------------------------------

func (r *AppointmentGormRepository) RunInBarberTx(
	ctx context.Context,
	barberID uint,
	fn func(tx domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Held until commit/rollback; other booking transactions for this
		// barber block here, bookings for other barbers never contend.
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			bookingLockClass,
			int64(barberID),
		).Error; err != nil {
			return fmt.Errorf("acquire barber lock: %w", err)
		}

		return fn(NewAppointmentGormRepository(tx))
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
