package impl

import (
	"context"
	"log/slog"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/domain/service"
	mockRepo "haven/internal/mocks/repository"
	"haven/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testIdentity() *service.Identity {
	return &service.Identity{
		UID:         "uid-1",
		Email:       "maya@example.com",
		DisplayName: "Maya",
		PhotoURL:    "https://example.com/maya.png",
	}
}

func TestAccountService_Register_AssignsRoleOnce(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()
	identity := testIdentity()

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := svc.Register(ctx, identity, &usecase.RegisterInput{Role: "artisan"})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, entity.RoleArtisan, user.Role)
	assert.Equal(t, "Maya", user.DisplayName)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.IsVerifiedArtisan)
}

func TestAccountService_Register_ConflictOnSecondRegistration(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUserAlreadyExists)

	_, err := svc.Register(ctx, testIdentity(), &usecase.RegisterInput{Role: "buyer"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Register_RejectsUnknownRole(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	_, err := svc.Register(context.Background(), testIdentity(), &usecase.RegisterInput{Role: "admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAccountService_EnsureProfile_CreatesBuyerOnFirstSignIn(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUID(ctx, "uid-1").
		Return(nil, repository.ErrUserNotFound)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := svc.EnsureProfile(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, user.Role)
}

func TestAccountService_EnsureProfile_ExistingDocUntouched(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()
	stored := &entity.User{UID: "uid-1", DisplayName: "Maya", Role: entity.RoleArtisan}

	mockUserRepo.EXPECT().
		FindByUID(ctx, "uid-1").
		Return(stored, nil)

	user, err := svc.EnsureProfile(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleArtisan, user.Role)
}

func TestAccountService_Resolve_MissingDocYieldsDefaults(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUID(ctx, "uid-1").
		Return(nil, repository.ErrUserNotFound)

	user, err := svc.Resolve(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "Maya", user.DisplayName)
	assert.Empty(t, user.Role)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.IsVerifiedArtisan)
}

func TestAccountService_Resolve_MergesIdentityGaps(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()
	stored := &entity.User{UID: "uid-1", Role: entity.RoleBuyer}

	mockUserRepo.EXPECT().
		FindByUID(ctx, "uid-1").
		Return(stored, nil)

	user, err := svc.Resolve(ctx, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", user.Email)
	assert.Equal(t, "Maya", user.DisplayName)
	assert.Equal(t, entity.RoleBuyer, user.Role)
}

func TestAccountService_Resolve_PropagatesStoreError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUID(ctx, "uid-1").
		Return(nil, errors.New("store unavailable"))

	_, err := svc.Resolve(ctx, testIdentity())
	require.Error(t, err)
}

func TestAccountService_Watch_ResolvesEachState(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan *entity.User, 2)
	updates <- nil
	updates <- &entity.User{UID: "uid-1", Role: entity.RoleArtisan}
	close(updates)

	mockUserRepo.EXPECT().
		Watch(ctx, "uid-1").
		Return((<-chan *entity.User)(updates), nil)

	out, err := svc.Watch(ctx, testIdentity())
	require.NoError(t, err)

	first := <-out
	require.NotNil(t, first)
	assert.Empty(t, first.Role)
	assert.Equal(t, "Maya", first.DisplayName)

	second := <-out
	require.NotNil(t, second)
	assert.Equal(t, entity.RoleArtisan, second.Role)

	_, open := <-out
	assert.False(t, open)
}

func TestAccountService_UpdateShippingAddress(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		UpdateShippingAddress(ctx, "uid-1", mock.AnythingOfType("*entity.ShippingAddress")).
		Return(nil)

	err := svc.UpdateShippingAddress(ctx, "uid-1", &usecase.ShippingAddressInput{
		Name:    "Maya",
		Line1:   "12 Lake Road",
		City:    "Jaipur",
		State:   "Rajasthan",
		Pincode: "302001",
		Phone:   "+911234567890",
	})
	require.NoError(t, err)
}

func TestAccountService_UpdateStory_MissingProfile(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAccountService(mockUserRepo, testLogger())

	ctx := context.Background()

	mockUserRepo.EXPECT().
		UpdateArtisanStory(ctx, "uid-1", "my story").
		Return(repository.ErrUserNotFound)

	err := svc.UpdateStory(ctx, "uid-1", "my story")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
