package entity

import "strings"

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin        = 1
	RoleIDVeterinarian = 2
	RoleIDPetOwner     = 3
)

// RoleNames constants
const (
	RoleAdmin        = "admin"
	RoleVeterinarian = "veterinarian"
	RolePetOwner     = "pet_owner"
)

// roleAliases maps common role aliases sent by clients to canonical role names.
var roleAliases = map[string]string{
	"owner":        RolePetOwner,
	"pet_owner":    RolePetOwner,
	"vet":          RoleVeterinarian,
	"veterinarian": RoleVeterinarian,
	"admin":        RoleAdmin,
}

// NormalizeRoleName resolves a client-supplied role name to its canonical
// value, ignoring case. Returns the input unchanged when no alias matches.
func NormalizeRoleName(name string) string {
	if canonical, ok := roleAliases[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

// RoleIDByName returns the role ID for a canonical role name.
func RoleIDByName(name string) (int, bool) {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin, true
	case RoleVeterinarian:
		return RoleIDVeterinarian, true
	case RolePetOwner:
		return RoleIDPetOwner, true
	}
	return 0, false
}

// RoleNameByID returns the canonical role name for a role ID.
func RoleNameByID(id int) string {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDVeterinarian:
		return RoleVeterinarian
	case RoleIDPetOwner:
		return RolePetOwner
	}
	return ""
}
