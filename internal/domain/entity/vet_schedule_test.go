package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDay(t *testing.T) {
	for _, day := range WeekDays() {
		assert.True(t, ValidDay(day), day)
	}

	assert.True(t, ValidDay("Monday"))
	assert.True(t, ValidDay("SUNDAY"))
	assert.False(t, ValidDay("mon"))
	assert.False(t, ValidDay("someday"))
	assert.False(t, ValidDay(""))
}

func TestDayIndex(t *testing.T) {
	assert.Equal(t, 0, DayIndex("monday"))
	assert.Equal(t, 6, DayIndex("Sunday"))
	assert.Equal(t, -1, DayIndex("holiday"))
}

func TestNormalizeRoleName(t *testing.T) {
	assert.Equal(t, RolePetOwner, NormalizeRoleName("owner"))
	assert.Equal(t, RolePetOwner, NormalizeRoleName("pet_owner"))
	assert.Equal(t, RoleVeterinarian, NormalizeRoleName("vet"))
	assert.Equal(t, RoleAdmin, NormalizeRoleName("admin"))
	assert.Equal(t, "unknown", NormalizeRoleName("unknown"))

	// Role names match ignoring case, like day names do.
	assert.Equal(t, RolePetOwner, NormalizeRoleName("Owner"))
	assert.Equal(t, RoleVeterinarian, NormalizeRoleName("VET"))
	assert.Equal(t, RoleAdmin, NormalizeRoleName("Admin"))
}
