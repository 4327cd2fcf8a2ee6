package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scheduleForm struct {
	Day       string `validate:"required"`
	StartTime string `validate:"required,hhmm"`
	EndTime   string `validate:"required,hhmm"`
}

func TestValidate_HHMM(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(scheduleForm{Day: "monday", StartTime: "09:00", EndTime: "17:00"}))
	assert.NoError(t, v.Validate(scheduleForm{Day: "monday", StartTime: "00:00", EndTime: "23:59"}))

	invalid := []scheduleForm{
		{Day: "monday", StartTime: "9:00", EndTime: "17:00"},  // not zero-padded
		{Day: "monday", StartTime: "09:00", EndTime: "24:00"}, // invalid hour
		{Day: "monday", StartTime: "09:60", EndTime: "17:00"}, // invalid minute
		{Day: "monday", StartTime: "0900", EndTime: "17:00"},  // missing colon
	}
	for _, form := range invalid {
		assert.Error(t, v.Validate(form), "%+v", form)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(scheduleForm{StartTime: "9:00", EndTime: "17:00"})
	assert.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "Day is required", fields["Day"])
	assert.Equal(t, "StartTime must be a zero-padded HH:MM time", fields["StartTime"])
}
