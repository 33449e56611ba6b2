// internal/services/auth_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burim/garant-backend/internal/config"
	"github.com/burim/garant-backend/internal/models"
)

func newAuthServiceFixture() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
	return NewAuthService(repo, cfg), repo
}

func TestRegister(t *testing.T) {
	service, _ := newAuthServiceFixture()

	resp, err := service.Register(context.Background(), &RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "secret1234",
		FirstName: "Ivan",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)
	assert.NoError(t, resp.User.CheckPassword("secret1234"))
}

func TestRegisterWeakPassword(t *testing.T) {
	service, _ := newAuthServiceFixture()

	_, err := service.Register(context.Background(), &RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "letters only",
		FirstName: "Ivan",
	})
	serviceErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, serviceErr.Kind)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newAuthServiceFixture()

	req := &RegisterRequest{Email: "ivan@example.com", Password: "secret1234", FirstName: "Ivan"}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	serviceErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, serviceErr.Kind)
	assert.Equal(t, "auth.user_exists", serviceErr.Code)
}

func TestLogin(t *testing.T) {
	service, repo := newAuthServiceFixture()

	_, err := service.Register(context.Background(), &RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "secret1234",
		FirstName: "Ivan",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &LoginRequest{
		Email:    "ivan@example.com",
		Password: "secret1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	stored, err := repo.FindByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

// A missing account and a wrong password must be indistinguishable.
func TestLoginInvalidCredentials(t *testing.T) {
	service, _ := newAuthServiceFixture()

	_, err := service.Register(context.Background(), &RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "secret1234",
		FirstName: "Ivan",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrong12345",
	})
	badPass, ok := AsError(err)
	require.True(t, ok)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1234",
	})
	noUser, ok := AsError(err)
	require.True(t, ok)

	assert.Equal(t, badPass.Code, noUser.Code)
	assert.Equal(t, badPass.Kind, noUser.Kind)
	assert.Equal(t, "auth.invalid_credentials", badPass.Code)
}

func TestRefresh(t *testing.T) {
	service, _ := newAuthServiceFixture()

	registered, err := service.Register(context.Background(), &RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "secret1234",
		FirstName: "Ivan",
	})
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = service.Refresh(context.Background(), "not-a-token")
	serviceErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, serviceErr.Kind)
}

func TestEmailAvailable(t *testing.T) {
	service, _ := newAuthServiceFixture()

	available, err := service.EmailAvailable(context.Background(), "ivan@example.com")
	require.NoError(t, err)
	assert.True(t, available)

	_, err = service.Register(context.Background(), &RegisterRequest{
		Email:     "ivan@example.com",
		Password:  "secret1234",
		FirstName: "Ivan",
	})
	require.NoError(t, err)

	available, err = service.EmailAvailable(context.Background(), "ivan@example.com")
	require.NoError(t, err)
	assert.False(t, available)
}
