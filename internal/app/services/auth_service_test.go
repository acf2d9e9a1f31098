package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/learnhub/internal/app/models"
	"github.com/derya/learnhub/internal/app/models/dto"
	"github.com/derya/learnhub/internal/pkg/apperrors"
	"github.com/derya/learnhub/internal/pkg/auth"
)

func newTestAuthService(userRepo *fakeUserRepo) AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "learnhub.test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop())
}

func TestRegisterIssuesToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newTestAuthService(userRepo)

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	// Role defaults to student when omitted
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	stored, err := userRepo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	req := &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	}

	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RoleType("admin"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     models.RoleInstructor,
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleInstructor, resp.User.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, unknownEmailErr := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, wrongPasswordErr := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownEmailErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestProfile(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, err := service.Profile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)

	_, err = service.Profile(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
