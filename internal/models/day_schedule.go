package models

import "time"

// DaySchedule is one weekly working-hours row; at most one per barber per
// weekday (0 = Sunday .. 6 = Saturday).
type DaySchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_day_schedule_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_day_schedule_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:mm

	Breaks []ScheduleBreak `gorm:"polymorphic:Owner;polymorphicValue:day_schedule" json:"breaks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
