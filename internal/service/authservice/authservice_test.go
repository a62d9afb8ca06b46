package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/pkg/auth"
	"github.com/rewear/rewear-pos/pkg/ratelimit"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	limiter := ratelimit.New(5, time.Minute)
	service := New(userRepo, &auth.HashService{}, auth.NewJWTService("test-secret"), limiter)
	defer ctrl.Finish()
	return service, userRepo
}

func hashed(t *testing.T, password string) string {
	hash, err := (&auth.HashService{}).HashPassword(password)
	assert.NoError(t, err)
	return hash
}

func TestAuthenticate(t *testing.T) {
	service, userRepo := NewMock(t)
	adminHash := hashed(t, "secure-admin-pw")

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedError error
		expectedUser  string
	}{
		{
			name:     "Valid credentials",
			username: "admin",
			password: "secure-admin-pw",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(&domain.User{
					ID:           1,
					Username:     "admin",
					PasswordHash: adminHash,
					Role:         "admin",
				}, nil)
			},
			expectedUser: "admin",
		},
		{
			name:     "Username is lower-cased before lookup",
			username: "Admin",
			password: "secure-admin-pw",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(&domain.User{
					ID:           1,
					Username:     "admin",
					PasswordHash: adminHash,
					Role:         "admin",
				}, nil)
			},
			expectedUser: "admin",
		},
		{
			name:     "Unknown user",
			username: "ghost",
			password: "whatever",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			username: "admin",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(&domain.User{
					ID:           1,
					Username:     "admin",
					PasswordHash: adminHash,
					Role:         "admin",
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Repo error",
			username: "admin",
			password: "secure-admin-pw",
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			// Each case uses its own IP so the limiter never interferes.
			ip := string(rune('a' + i))
			user, err := service.Authenticate(context.Background(), ip, tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user.Username)
			}
		})
	}
}

func TestAuthenticateRateLimited(t *testing.T) {
	service, userRepo := NewMock(t)

	userRepo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, nil).Times(5)
	for i := 0; i < 5; i++ {
		_, err := service.Authenticate(context.Background(), "10.0.0.1", "ghost", "pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// 6th attempt is throttled before the credential check; the repo must
	// not even be consulted.
	_, err := service.Authenticate(context.Background(), "10.0.0.1", "ghost", "pw")
	assert.ErrorIs(t, err, ErrRateLimited)

	// A correct password does not bypass the limiter either.
	_, err = service.Authenticate(context.Background(), "10.0.0.1", "admin", "secure-admin-pw")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken("smilla", "mitarbeiter")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.NewJWTService("test-secret").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "smilla", claims.Username)
	assert.Equal(t, "mitarbeiter", claims.Role)
	assert.InDelta(t, time.Now().Add(12*time.Hour).Unix(), claims.ExpiresAt, 5)
}

func TestListUsers(t *testing.T) {
	service, userRepo := NewMock(t)

	userRepo.EXPECT().List(gomock.Any()).Return([]domain.User{
		{Username: "admin", Role: "admin"},
		{Username: "smilla", Role: "mitarbeiter"},
	}, nil)

	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
