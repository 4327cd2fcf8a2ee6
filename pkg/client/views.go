package client

import "pawpoint/internal/domain/entity"

// View identifies a frontend screen.
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewPets         View = "pets"
	ViewAppointments View = "appointments"
	ViewTreatments   View = "treatments"
	ViewSchedule     View = "schedule"
	ViewUsers        View = "users"
	ViewClinics      View = "clinics"
	ViewReports      View = "reports"
)

// viewsByRole is the navigation table per role. Every role lands on the
// dashboard first.
var viewsByRole = map[string][]View{
	entity.RolePetOwner:     {ViewDashboard, ViewPets, ViewAppointments},
	entity.RoleVeterinarian: {ViewDashboard, ViewAppointments, ViewTreatments, ViewSchedule},
	entity.RoleAdmin:        {ViewDashboard, ViewUsers, ViewClinics, ViewReports},
}

// ViewsFor returns the views a role may open. Role aliases such as "owner"
// and "vet" are accepted. Unknown roles get no views.
func ViewsFor(role string) []View {
	views, ok := viewsByRole[entity.NormalizeRoleName(role)]
	if !ok {
		return nil
	}
	out := make([]View, len(views))
	copy(out, views)
	return out
}

// CanAccess reports whether the role may open the view.
func CanAccess(role string, view View) bool {
	for _, v := range ViewsFor(role) {
		if v == view {
			return true
		}
	}
	return false
}

// DefaultView is the screen shown right after login.
func DefaultView(role string) View {
	if len(ViewsFor(role)) == 0 {
		return ""
	}
	return ViewDashboard
}
