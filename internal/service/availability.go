package service

import (
	"strings"
	"time"

	"pawpoint/internal/domain/entity"
)

// AvailabilityService decides whether a requested appointment time falls
// inside a veterinarian's weekly working windows.
type AvailabilityService interface {
	IsBookable(datetime time.Time, schedules []entity.VetSchedule) bool
	MatchingWindow(datetime time.Time, schedules []entity.VetSchedule) *entity.VetSchedule
}

type availabilityService struct{}

func NewAvailabilityService() AvailabilityService {
	return &availabilityService{}
}

// IsBookable reports whether the time falls inside any schedule window.
// A vet with no schedule rows accepts no appointments.
func (s *availabilityService) IsBookable(datetime time.Time, schedules []entity.VetSchedule) bool {
	return s.MatchingWindow(datetime, schedules) != nil
}

// MatchingWindow returns the first window containing the time, or nil.
// Day comparison ignores case. Times are compared as zero-padded HH:MM
// strings, so lexicographic order matches clock order. Both boundaries are
// inclusive. Windows with malformed times never match.
func (s *availabilityService) MatchingWindow(datetime time.Time, schedules []entity.VetSchedule) *entity.VetSchedule {
	day := strings.ToLower(datetime.Weekday().String())
	clock := datetime.Format("15:04")

	for i := range schedules {
		window := &schedules[i]
		if strings.ToLower(window.Day) != day {
			continue
		}
		if !validClock(window.StartTime) || !validClock(window.EndTime) {
			continue
		}
		if window.StartTime <= clock && clock <= window.EndTime {
			return window
		}
	}
	return nil
}

func validClock(value string) bool {
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
