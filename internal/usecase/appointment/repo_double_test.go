package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheusvf/barber-agenda/internal/audit"
	domain "github.com/matheusvf/barber-agenda/internal/domain/appointment"
	"github.com/matheusvf/barber-agenda/internal/models"
	"github.com/matheusvf/barber-agenda/internal/timezone"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository double. RunInBarberTx serializes per
// barber with a mutex, mirroring the advisory-lock semantics of the real
// store.
type fakeRepo struct {
	mu sync.Mutex

	lockMu      sync.Mutex
	barberLocks map[uint]*sync.Mutex

	barbers      map[uint]*models.Barber
	services     map[uint]*models.Service
	weekly       map[uint][]models.DaySchedule
	exceptions   map[uint][]models.ScheduleException
	clients      map[string]*models.Client
	appointments []*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barberLocks: make(map[uint]*sync.Mutex),
		barbers:     make(map[uint]*models.Barber),
		services:    make(map[uint]*models.Service),
		weekly:      make(map[uint][]models.DaySchedule),
		exceptions:  make(map[uint][]models.ScheduleException),
		clients:     make(map[string]*models.Client),
	}
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.barbers[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) ListDaySchedules(_ context.Context, barberID uint) ([]models.DaySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.DaySchedule(nil), r.weekly[barberID]...), nil
}

func (r *fakeRepo) ListExceptionsForDate(_ context.Context, barberID uint, date time.Time) ([]models.ScheduleException, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ScheduleException
	for _, exc := range r.exceptions[barberID] {
		if timezone.FormatDate(exc.Date) == timezone.FormatDate(date) {
			out = append(out, exc)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, name, phone, email string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[phone]; ok {
		cp := *c
		return &cp, nil
	}

	r.nextID++
	c := &models.Client{ID: r.nextID, Name: name, Phone: phone, Email: email}
	r.clients[phone] = c
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) ListActiveAppointments(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments = append(r.appointments, &cp)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID == appointmentID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cur := range r.appointments {
		if cur.ID == ap.ID {
			cp := *ap
			r.appointments[i] = &cp
			return nil
		}
	}
	return errNotFound
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) RunInBarberTx(_ context.Context, barberID uint, fn func(tx domain.Repository) error) error {
	r.lockMu.Lock()
	lock, ok := r.barberLocks[barberID]
	if !ok {
		lock = &sync.Mutex{}
		r.barberLocks[barberID] = lock
	}
	r.lockMu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(r)
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Shared fixtures
// --------------------------------------------------

type noopSink struct{}

func (noopSink) Log(*uint, string, string, *uint, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{}, zap.NewNop())
}

// seededRepo: barber 1 works Mondays 09:00-18:00 with a 13:00-14:00 break;
// service 1 takes 45 minutes.
func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.barbers[1] = &models.Barber{ID: 1, Name: "Rafael", Active: true}
	repo.services[1] = &models.Service{ID: 1, Name: "Corte + Barba", DurationMin: 45, Active: true}
	repo.weekly[1] = []models.DaySchedule{{
		BarberID:  1,
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "18:00",
		Breaks: []models.ScheduleBreak{
			{StartTime: "13:00", EndTime: "14:00"},
		},
	}}
	return repo
}

// mondayAt returns an instant on Monday 2030-06-03 in the operating zone.
func mondayAt(clock string) time.Time {
	timezone.Configure("America/Sao_Paulo", -180)
	t, err := time.ParseInLocation("2006-01-02 15:04", "2030-06-03 "+clock, timezone.Location())
	if err != nil {
		panic(err)
	}
	return t
}
