package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/dto"
	"github.com/rewear/rewear-pos/internal/service/authservice"
	"github.com/rewear/rewear-pos/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mocks.go -package=auth Service
type Service interface {
	Authenticate(ctx context.Context, clientIP, username, password string) (*domain.User, error)
	GenerateToken(username, role string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type AuthHandler struct {
	authService Service
	trustProxy  bool
}

func New(authService Service, trustProxy bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		trustProxy:  trustProxy,
	}
}

// Login godoc
//
//	@Summary		Authenticate a staff member
//	@Description	Log in with a staff account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		429		{object}	utils.Response	"Too many attempts"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), h.clientIP(r), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrRateLimited):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.authService.GenerateToken(user.Username, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	})
}

// ListUsers godoc
//
//	@Summary		List staff accounts
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/auth/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.UserResponseDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.UserResponseDTO{Username: u.Username, Role: u.Role})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// clientIP keys the login rate limiter. The first X-Forwarded-For hop
// wins when a trusted proxy is in front; otherwise the socket address.
func (h *AuthHandler) clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); h.trustProxy && fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
