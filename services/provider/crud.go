// File: services/provider/crud.go
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "medibook/database/repository/provider"
	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates a provider account and signs the provider in.
func (s *DefaultProviderService) Register(ctx context.Context, req RegistrationRequest) (*models.ProviderAuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	prov := &models.Provider{
		ID: uuid.New().String(),
		Profile: models.Profile{
			Name:        req.Name,
			Specialty:   req.Specialty,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
			Bio:         req.Bio,
		},
		Security:  models.Security{PasswordHash: string(hashed)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, prov); err != nil {
		if errors.Is(err, providerRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	return s.issueToken(ctx, prov)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultProviderService) Authenticate(ctx context.Context, email, password string) (*models.ProviderAuthResponse, error) {
	prov, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if prov == nil {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(prov.Security.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	return s.issueToken(ctx, prov)
}

// GetProviderByID fetches a provider with credential material stripped.
func (s *DefaultProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if prov == nil {
		return nil, ErrNotFound
	}
	sanitize(prov)
	return prov, nil
}

func (s *DefaultProviderService) issueToken(ctx context.Context, prov *models.Provider) (*models.ProviderAuthResponse, error) {
	token, err := utils.GenerateToken(prov.ID, "provider", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, prov.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	sanitize(prov)
	return &models.ProviderAuthResponse{Provider: *prov, Token: token}, nil
}

func sanitize(prov *models.Provider) {
	prov.Security = models.Security{}
}
