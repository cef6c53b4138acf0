package appointment

import (
	"time"

	"github.com/matheusvf/barber-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Reschedule moves the appointment to a new start, recomputing the end from
// the service duration. The caller must have re-validated the new slot.
func Reschedule(ap *models.Appointment, start time.Time, durationMin int, now time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.StartTime = start
	ap.EndTime = start.Add(time.Duration(durationMin) * time.Minute)
	ap.Status = string(StatusRescheduled)
	ap.RescheduledAt = &now
	return nil
}
