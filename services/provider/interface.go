// File: services/provider/interface.go
package provider

import (
	"context"

	providerRepo "medibook/database/repository/provider"
	"medibook/models"
)

// RegistrationRequest is the payload for creating a provider account.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Specialty   string `json:"specialty"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Bio         string `json:"bio"`
	Password    string `json:"password" binding:"required,min=8"`
}

// ProviderService manages provider accounts and their availability template.
type ProviderService interface {
	Register(ctx context.Context, req RegistrationRequest) (*models.ProviderAuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.ProviderAuthResponse, error)
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)
	SetAvailability(ctx context.Context, providerID string, availability models.Availability) (*models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
