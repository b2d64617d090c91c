package provider

import (
	"context"
	"testing"

	providerRepo "medibook/database/repository/provider"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryProviderRepo struct {
	byID    map[string]*models.Provider
	byEmail map[string]*models.Provider
}

func newMemoryProviderRepo() *memoryProviderRepo {
	return &memoryProviderRepo{
		byID:    make(map[string]*models.Provider),
		byEmail: make(map[string]*models.Provider),
	}
}

func (m *memoryProviderRepo) Create(_ context.Context, prov *models.Provider) error {
	if _, taken := m.byEmail[prov.Profile.Email]; taken {
		return providerRepo.ErrEmailTaken
	}
	stored := *prov
	m.byID[prov.ID] = &stored
	m.byEmail[prov.Profile.Email] = &stored
	return nil
}

func (m *memoryProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	prov, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *prov
	return &copied, nil
}

func (m *memoryProviderRepo) GetByEmail(_ context.Context, email string) (*models.Provider, error) {
	prov, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *prov
	return &copied, nil
}

func (m *memoryProviderRepo) GetByIDWithProjection(ctx context.Context, id string, _ bson.M) (*models.Provider, error) {
	return m.GetByID(ctx, id)
}

func (m *memoryProviderRepo) UpdateAvailability(_ context.Context, id string, av models.Availability) error {
	prov, ok := m.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	prov.Availability = &av
	return nil
}

func (m *memoryProviderRepo) UpdateTokenHash(_ context.Context, id, tokenHash string) error {
	if prov, ok := m.byID[id]; ok {
		prov.Security.TokenHash = tokenHash
	}
	return nil
}

func (m *memoryProviderRepo) EnsureIndexes() error { return nil }

func registration() RegistrationRequest {
	return RegistrationRequest{
		Name:      "Dr. Amina Otieno",
		Specialty: "Dermatology",
		Email:     "amina@example.com",
		Password:  "correct horse battery",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newMemoryProviderRepo()
	svc := &DefaultProviderService{Repo: repo}

	resp, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.Provider.ID)
	// Credential material never leaves the service.
	assert.Empty(t, resp.Provider.Security.PasswordHash)
	assert.Empty(t, resp.Provider.Security.TokenHash)

	auth, err := svc.Authenticate(context.Background(), "amina@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, resp.Provider.ID, auth.Provider.ID)
	assert.NotEmpty(t, auth.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultProviderService{Repo: newMemoryProviderRepo()}

	_, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateRejects(t *testing.T) {
	svc := &DefaultProviderService{Repo: newMemoryProviderRepo()}

	_, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "amina@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestGetProviderByIDUnknown(t *testing.T) {
	svc := &DefaultProviderService{Repo: newMemoryProviderRepo()}

	_, err := svc.GetProviderByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAvailability(t *testing.T) {
	repo := newMemoryProviderRepo()
	svc := &DefaultProviderService{Repo: repo}

	resp, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	tpl := validTemplate(t)
	tpl.WorkingDays = []string{"monday", "wednesday"}

	prov, err := svc.SetAvailability(context.Background(), resp.Provider.ID, tpl)
	require.NoError(t, err)
	require.NotNil(t, prov.Availability)
	assert.Equal(t, []string{"Monday", "Wednesday"}, prov.Availability.WorkingDays)
	assert.Empty(t, prov.Security.PasswordHash)
}

func TestSetAvailabilityUnknownProvider(t *testing.T) {
	svc := &DefaultProviderService{Repo: newMemoryProviderRepo()}

	_, err := svc.SetAvailability(context.Background(), "missing", validTemplate(t))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAvailabilityRejectsInvalidTemplate(t *testing.T) {
	svc := &DefaultProviderService{Repo: newMemoryProviderRepo()}

	tpl := validTemplate(t)
	tpl.SlotDuration = 0

	_, err := svc.SetAvailability(context.Background(), "any", tpl)
	var aerr *AvailabilityError
	assert.ErrorAs(t, err, &aerr)
}
