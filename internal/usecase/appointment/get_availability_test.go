package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/matheusvf/barber-agenda/internal/domain/appointment"
	"github.com/matheusvf/barber-agenda/internal/domain/schedule"
	"github.com/matheusvf/barber-agenda/internal/httperr"
	"github.com/matheusvf/barber-agenda/internal/models"
)

func newAvailabilityUC(repo domain.Repository) *GetAvailability {
	return NewGetAvailability(repo, schedule.NewResolver(zap.NewNop()), 30)
}

func availabilityInput(day string) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      mondayAt("00:00").AddDate(0, 0, dayOffset(day)),
	}
}

func dayOffset(day string) int {
	switch day {
	case "sunday":
		return -1
	case "monday":
		return 0
	case "tuesday":
		return 1
	}
	panic("unknown day " + day)
}

func findSlot(slots []domain.TimeSlot, start string) *domain.TimeSlot {
	for i := range slots {
		if slots[i].StartTime == start {
			return &slots[i]
		}
	}
	return nil
}

func TestAvailabilityClosedDayIsEmptyList(t *testing.T) {
	uc := newAvailabilityUC(seededRepo())

	slots, err := uc.Execute(context.Background(), availabilityInput("sunday"))
	require.NoError(t, err)
	require.NotNil(t, slots)
	require.Empty(t, slots)

	slots, err = uc.Execute(context.Background(), availabilityInput("tuesday"))
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestAvailabilityDayOffAlwaysEmpty(t *testing.T) {
	repo := seededRepo()
	repo.exceptions[1] = []models.ScheduleException{{
		BarberID: 1,
		Date:     mondayAt("00:00"),
		Kind:     models.ExceptionDayOff,
	}}
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput("monday"))
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestAvailabilityCustomHoursReplaceWeekly(t *testing.T) {
	repo := seededRepo()
	repo.exceptions[1] = []models.ScheduleException{{
		BarberID:  1,
		Date:      mondayAt("00:00"),
		Kind:      models.ExceptionCustomHours,
		StartTime: "10:00",
		EndTime:   "12:00",
	}}
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput("monday"))
	require.NoError(t, err)

	require.NotNil(t, findSlot(slots, "10:00"))
	require.Nil(t, findSlot(slots, "09:00"), "weekly hours must not leak")
	require.Nil(t, findSlot(slots, "14:00"), "weekly hours must not leak")
}

func TestAvailabilitySlotsRespectBreakAndClose(t *testing.T) {
	uc := newAvailabilityUC(seededRepo())

	slots, err := uc.Execute(context.Background(), availabilityInput("monday"))
	require.NoError(t, err)

	s := findSlot(slots, "12:15")
	require.NotNil(t, s, "last morning start must be offered")
	require.True(t, s.Available)

	require.Nil(t, findSlot(slots, "12:30"))
	require.Nil(t, findSlot(slots, "12:45"))

	s = findSlot(slots, "14:00")
	require.NotNil(t, s)
	require.True(t, s.Available)

	require.Nil(t, findSlot(slots, "17:30"))
}

func TestAvailabilityMarksBookedSlots(t *testing.T) {
	repo := seededRepo()
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:        1,
		BarberID:  1,
		StartTime: mondayAt("10:00"),
		EndTime:   mondayAt("10:45"),
		Status:    string(domain.StatusScheduled),
	})
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput("monday"))
	require.NoError(t, err)

	s := findSlot(slots, "09:00")
	require.NotNil(t, s)
	require.True(t, s.Available, "09:00-09:45 does not touch the appointment")

	s = findSlot(slots, "09:30")
	require.NotNil(t, s, "taken slots are emitted, not omitted")
	require.False(t, s.Available, "09:30-10:15 overlaps the appointment")

	s = findSlot(slots, "10:30")
	require.NotNil(t, s)
	require.False(t, s.Available)
}

func TestAvailabilityIgnoresCancelledAndCompleted(t *testing.T) {
	repo := seededRepo()
	repo.appointments = append(repo.appointments,
		&models.Appointment{
			ID: 1, BarberID: 1,
			StartTime: mondayAt("10:00"), EndTime: mondayAt("10:45"),
			Status: string(domain.StatusCancelled),
		},
		&models.Appointment{
			ID: 2, BarberID: 1,
			StartTime: mondayAt("11:00"), EndTime: mondayAt("11:45"),
			Status: string(domain.StatusCompleted),
		},
	)
	uc := newAvailabilityUC(repo)

	slots, err := uc.Execute(context.Background(), availabilityInput("monday"))
	require.NoError(t, err)

	for _, clock := range []string{"10:00", "11:00"} {
		s := findSlot(slots, clock)
		require.NotNil(t, s)
		require.True(t, s.Available, "slot %s must be free again", clock)
	}
}

func TestAvailabilityIdempotentWithoutWrites(t *testing.T) {
	uc := newAvailabilityUC(seededRepo())
	ctx := context.Background()

	first, err := uc.Execute(ctx, availabilityInput("monday"))
	require.NoError(t, err)

	second, err := uc.Execute(ctx, availabilityInput("monday"))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAvailabilityEntityErrors(t *testing.T) {
	repo := seededRepo()
	repo.services[2] = &models.Service{ID: 2, Name: "Luzes", DurationMin: 90, Active: false}
	uc := newAvailabilityUC(repo)
	ctx := context.Background()

	in := availabilityInput("monday")
	in.ServiceID = 99
	_, err := uc.Execute(ctx, in)
	require.True(t, httperr.IsBusiness(err, "service_not_found"))

	in = availabilityInput("monday")
	in.ServiceID = 2
	_, err = uc.Execute(ctx, in)
	require.True(t, httperr.IsBusiness(err, "service_inactive"))

	in = availabilityInput("monday")
	in.BarberID = 99
	_, err = uc.Execute(ctx, in)
	require.True(t, httperr.IsBusiness(err, "barber_not_found"))
}
