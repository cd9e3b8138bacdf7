package user

import (
	userRepo "homeroom/database/repository/user"
	"homeroom/models"
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// RegistrationData is the payload required to create an account.
type RegistrationData struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	GradYear  int    `json:"gradYear"`
}

// UpdateRequest carries the mutable account fields; nil pointers are left
// unchanged.
type UpdateRequest struct {
	UserID            string
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	GradYear          *int    `json:"gradYear"`
	PortalURLClasses  *string `json:"portalURLClasses"`
	PortalURLCalendar *string `json:"portalURLCalendar"`
}

type UserService interface {
	// RegisterUser creates an account and signs the new user in.
	RegisterUser(data RegistrationData) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and issues a token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdateUser applies an update request and returns the updated record.
	UpdateUser(req UpdateRequest) (*models.User, error)
	// UpdateUserPassword verifies the current password and sets a new one.
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	// RevokeUserAuthToken invalidates the user's active token.
	RevokeUserAuthToken(userID string) error
	// DeleteUser removes the account and revokes its token.
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
