package dto

// Request DTOs

// CreateUserRequest is the admin-side user creation payload. Unlike public
// registration it accepts any role.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	PhoneNo   string `json:"phone_no" validate:"omitempty,min=7,max=20"`
	Role      string `json:"role" validate:"required"`
}
