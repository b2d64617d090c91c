// File: services/user/user.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	// ErrNotFound is returned for unknown user ids.
	ErrNotFound = errors.New("user not found")

	// ErrBadCredentials is returned when login fails.
	ErrBadCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when the registration email is in use.
	ErrEmailTaken = errors.New("email already registered")
)

// RegistrationRequest is the payload for creating a patient account.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required,min=8"`
}

// UserService manages patient accounts.
type UserService interface {
	Register(ctx context.Context, req RegistrationRequest) (*models.UserAuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.UserAuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, req RegistrationRequest) (*models.UserAuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Security:    models.Security{PasswordHash: string(hashed)},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.UserAuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Security.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}
	u.Security = models.Security{}
	return u, nil
}

func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*models.UserAuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, "user", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, u.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	u.Security = models.Security{}
	return &models.UserAuthResponse{User: *u, Token: token}, nil
}
