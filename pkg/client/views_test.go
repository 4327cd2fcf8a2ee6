package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewsFor(t *testing.T) {
	assert.Equal(t, []View{ViewDashboard, ViewPets, ViewAppointments}, ViewsFor("pet_owner"))
	assert.Equal(t, []View{ViewDashboard, ViewAppointments, ViewTreatments, ViewSchedule}, ViewsFor("veterinarian"))
	assert.Equal(t, []View{ViewDashboard, ViewUsers, ViewClinics, ViewReports}, ViewsFor("admin"))

	// Aliases resolve to the canonical role.
	assert.Equal(t, ViewsFor("pet_owner"), ViewsFor("owner"))
	assert.Equal(t, ViewsFor("veterinarian"), ViewsFor("vet"))

	assert.Empty(t, ViewsFor("intruder"))
	assert.Empty(t, ViewsFor(""))
}

func TestCanAccess(t *testing.T) {
	assert.True(t, CanAccess("owner", ViewPets))
	assert.False(t, CanAccess("owner", ViewReports))
	assert.True(t, CanAccess("admin", ViewReports))
	assert.False(t, CanAccess("admin", ViewTreatments))
	assert.False(t, CanAccess("intruder", ViewDashboard))
}

func TestDefaultView(t *testing.T) {
	assert.Equal(t, ViewDashboard, DefaultView("owner"))
	assert.Equal(t, ViewDashboard, DefaultView("admin"))
	assert.Equal(t, View(""), DefaultView("intruder"))
}
