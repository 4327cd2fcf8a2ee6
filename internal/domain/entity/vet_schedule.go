package entity

import (
	"strings"
	"time"
)

// VetSchedule is a recurring weekly interval during which a veterinarian
// accepts appointments. Day is stored lowercase; times are zero-padded HH:MM,
// which makes lexicographic comparison equivalent to chronological comparison.
type VetSchedule struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Day            string    `gorm:"type:varchar(10);not null" json:"day"`
	StartTime      string    `gorm:"column:time_start;type:varchar(5);not null" json:"time_start"`
	EndTime        string    `gorm:"column:time_end;type:varchar(5);not null" json:"time_end"`
	VeterinarianID int64     `gorm:"not null;index" json:"veterinarian_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Veterinarian Veterinarian `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
}

func (VetSchedule) TableName() string {
	return "veterinarian_schedules"
}

// weekDays in calendar order, all lowercase.
var weekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ValidDay reports whether day names a weekday, ignoring case.
func ValidDay(day string) bool {
	return DayIndex(day) >= 0
}

// DayIndex returns the calendar position of a weekday name (monday=0), or -1
// when the name is not a weekday. Comparison ignores case.
func DayIndex(day string) int {
	lower := strings.ToLower(day)
	for i, d := range weekDays {
		if d == lower {
			return i
		}
	}
	return -1
}

// WeekDays returns the valid weekday names in calendar order.
func WeekDays() []string {
	out := make([]string, len(weekDays))
	copy(out, weekDays)
	return out
}
