package models

import "time"

// Exception kinds. A day_off removes all availability for the date; a
// custom_hours row replaces the weekly entry for the date entirely.
const (
	ExceptionDayOff      = "day_off"
	ExceptionCustomHours = "custom_hours"
)

type ScheduleException struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_schedule_exception_barber_date" json:"barber_id"`

	Date time.Time `gorm:"uniqueIndex:idx_schedule_exception_barber_date;type:date" json:"date"`

	Kind string `gorm:"size:20;not null" json:"kind"`

	// Only meaningful for custom_hours.
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Breaks []ScheduleBreak `gorm:"polymorphic:Owner;polymorphicValue:schedule_exception" json:"breaks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
