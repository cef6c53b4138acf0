package appointment

import "github.com/matheusvf/barber-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
	StatusCompleted   Status = "completed"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusScheduled, StatusRescheduled, StatusCancelled, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

// Terminal states accept no further transitions.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Active appointments occupy time on the barber's calendar.
func IsActive(s Status) bool {
	return s == StatusScheduled || s == StatusRescheduled
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReschedule define se um agendamento pode ser remarcado
func CanReschedule(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
