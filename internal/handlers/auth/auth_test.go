package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/internal/service/authservice"
	"github.com/rewear/rewear-pos/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, true)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		remoteAddr    string
		forwardedFor  string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:       "Successful login",
			body:       `{"username":"smilla","password":"password123"}`,
			remoteAddr: "10.0.0.7:51234",
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "10.0.0.7", "smilla", "password123").
					Return(&domain.User{Username: "smilla", Role: "mitarbeiter"}, nil)
				service.EXPECT().GenerateToken("smilla", "mitarbeiter").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "X-Forwarded-For wins over the socket address",
			body:         `{"username":"smilla","password":"password123"}`,
			remoteAddr:   "10.0.0.7:51234",
			forwardedFor: "203.0.113.9, 10.0.0.7",
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "203.0.113.9", "smilla", "password123").
					Return(&domain.User{Username: "smilla", Role: "mitarbeiter"}, nil)
				service.EXPECT().GenerateToken("smilla", "mitarbeiter").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "Invalid credentials",
			body:       `{"username":"smilla","password":"wrong"}`,
			remoteAddr: "10.0.0.7:51234",
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "10.0.0.7", "smilla", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: authservice.ErrInvalidCredentials.Error(),
		},
		{
			name:       "Rate limited",
			body:       `{"username":"smilla","password":"password123"}`,
			remoteAddr: "10.0.0.7:51234",
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "10.0.0.7", "smilla", "password123").
					Return(nil, authservice.ErrRateLimited)
			},
			expectedCode:  http.StatusTooManyRequests,
			expectedError: authservice.ErrRateLimited.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			remoteAddr:    "10.0.0.7:51234",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set("X-Forwarded-For", tt.forwardedFor)
			}
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.LoginResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "some-jwt-token", resp.Token)
				assert.Equal(t, "smilla", resp.Username)
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandlerUntrustedProxy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := NewMockService(ctrl)
	handler := New(service, false)

	service.EXPECT().Authenticate(gomock.Any(), "10.0.0.7", "smilla", "password123").
		Return(&domain.User{Username: "smilla", Role: "mitarbeiter"}, nil)
	service.EXPECT().GenerateToken("smilla", "mitarbeiter").Return("some-jwt-token", nil)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(`{"username":"smilla","password":"password123"}`)))
	req.RemoteAddr = "10.0.0.7:51234"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListUsersHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{
		{Username: "admin", Role: "admin"},
		{Username: "smilla", Role: "mitarbeiter"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/auth/users", nil)
	rr := httptest.NewRecorder()

	handler.ListUsers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.UserResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "admin", resp[0].Username)
}
