package models

// ScheduleBreak is a closed slice of non-working time inside a working
// window. It belongs either to a DaySchedule or to a custom-hours
// ScheduleException (polymorphic owner).
type ScheduleBreak struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID   uint   `gorm:"index" json:"-"`
	OwnerType string `gorm:"size:30;index" json:"-"`

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:mm
}
