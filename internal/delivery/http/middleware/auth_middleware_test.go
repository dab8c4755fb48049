package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/service"
	mockSvc "haven/internal/mocks/service"
	mockUC "haven/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/account/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func passThrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockAccounts := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(mockVerifier, mockAccounts)

	var called bool
	err := m.Authenticate(passThrough(&called))(newTestContext(t, ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.False(t, called)
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockAccounts := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(mockVerifier, mockAccounts)

	var called bool
	err := m.Authenticate(passThrough(&called))(newTestContext(t, "Basic abc"))

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.False(t, called)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockAccounts := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(mockVerifier, mockAccounts)

	mockVerifier.EXPECT().
		VerifyIDToken(mock.Anything, "expired-token").
		Return(nil, assert.AnError)

	var called bool
	err := m.Authenticate(passThrough(&called))(newTestContext(t, "Bearer expired-token"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, called)
}

func TestAuthenticate_ResolvesProfileOntoContext(t *testing.T) {
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockAccounts := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(mockVerifier, mockAccounts)

	identity := &service.Identity{UID: "uid-1", Email: "maya@example.com"}
	profile := &entity.User{UID: "uid-1", Role: entity.RoleBuyer}

	mockVerifier.EXPECT().
		VerifyIDToken(mock.Anything, "good-token").
		Return(identity, nil)
	mockAccounts.EXPECT().
		Resolve(mock.Anything, identity).
		Return(profile, nil)

	c := newTestContext(t, "Bearer good-token")

	var called bool
	err := m.Authenticate(passThrough(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)

	gotIdentity, ok := CurrentIdentity(c)
	require.True(t, ok)
	assert.Equal(t, "uid-1", gotIdentity.UID)

	gotProfile, ok := CurrentProfile(c)
	require.True(t, ok)
	assert.Equal(t, entity.RoleBuyer, gotProfile.Role)
}

func TestRequireAdmin(t *testing.T) {
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockAccounts := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(mockVerifier, mockAccounts)

	tests := []struct {
		name    string
		profile *entity.User
		wantErr error
	}{
		{
			name:    "admin passes",
			profile: &entity.User{UID: "uid-1", IsAdmin: true},
		},
		{
			name:    "non-admin rejected",
			profile: &entity.User{UID: "uid-1"},
			wantErr: domainerrors.ErrAdminRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, "")
			c.Set(ContextKeyProfile, tt.profile)

			var called bool
			err := m.RequireAdmin(passThrough(&called))(c)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestRequireVerifiedArtisan(t *testing.T) {
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockAccounts := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(mockVerifier, mockAccounts)

	tests := []struct {
		name    string
		profile *entity.User
		wantErr error
	}{
		{
			name:    "verified artisan passes",
			profile: &entity.User{UID: "a1", Role: entity.RoleArtisan, IsVerifiedArtisan: true},
		},
		{
			name:    "buyer gets role error",
			profile: &entity.User{UID: "b1", Role: entity.RoleBuyer},
			wantErr: domainerrors.ErrArtisanRequired,
		},
		{
			name:    "unverified artisan gets verification error",
			profile: &entity.User{UID: "a2", Role: entity.RoleArtisan},
			wantErr: domainerrors.ErrVerificationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, "")
			c.Set(ContextKeyProfile, tt.profile)

			var called bool
			err := m.RequireVerifiedArtisan(passThrough(&called))(c)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestRequireAdmin_WithoutAuthenticate(t *testing.T) {
	mockVerifier := mockSvc.NewMockIdentityVerifier(t)
	mockAccounts := mockUC.NewMockAccountUsecase(t)
	m := NewAuthMiddleware(mockVerifier, mockAccounts)

	var called bool
	err := m.RequireAdmin(passThrough(&called))(newTestContext(t, ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.False(t, called)
}
