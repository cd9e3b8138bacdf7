package user

import (
	"context"
	"fmt"
	"time"

	"homeroom/models"
	"homeroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued auth token stays valid.
const tokenTTL = 30 * 24 * time.Hour

// RegisterUser creates an account and signs the new user in.
func (s *DefaultUserService) RegisterUser(data RegistrationData) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		logger.Error("RegisterUser: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with that email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: string(hash),
		GradYear:     data.GradYear,
	}
	if err := s.Repo.Create(usr); err != nil {
		logger.Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(usr)
}

// AuthenticateUser verifies credentials and issues a token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(usr)
}

// issueToken signs a JWT for the user and pins its hash in the auth cache so
// it can be revoked.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	cache := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + usr.ID
	if err := cache.Set(context.Background(), key, utils.HashToken(token), tokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store auth session: %w", err)
	}
	return &AuthResponse{User: usr, Token: token}, nil
}

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateUser applies an update request and returns the updated record.
func (s *DefaultUserService) UpdateUser(req UpdateRequest) (*models.User, error) {
	usr, err := s.Repo.GetByID(req.UserID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		usr.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		usr.LastName = *req.LastName
	}
	if req.GradYear != nil {
		usr.GradYear = *req.GradYear
	}
	if req.PortalURLClasses != nil {
		usr.PortalURLClasses = *req.PortalURLClasses
	}
	if req.PortalURLCalendar != nil {
		usr.PortalURLCalendar = *req.PortalURLCalendar
	}

	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// UpdateUserPassword verifies the current password and sets a new one. The
// active token is revoked so other sessions must sign in again.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	usr.PasswordHash = string(hash)
	if err := s.Repo.Update(usr); err != nil {
		return err
	}
	return s.RevokeUserAuthToken(userID)
}

// RevokeUserAuthToken invalidates the user's active token.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	cache := utils.GetAuthCacheClient()
	if err := cache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}

// DeleteUser removes the account and revokes its token.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	return s.RevokeUserAuthToken(userID)
}
