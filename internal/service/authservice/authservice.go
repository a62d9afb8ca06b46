package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/pkg/auth"
	"github.com/rewear/rewear-pos/pkg/ratelimit"
)

const tokenTTL = 12 * time.Hour

//go:generate mockgen -source=authservice.go -destination=mocks.go -package=authservice Repo

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

var (
	ErrRateLimited        = errors.New("zu viele Login-Versuche")
	ErrInvalidCredentials = errors.New("falscher Benutzername oder Passwort")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	limiter     *ratelimit.Limiter
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, limiter *ratelimit.Limiter) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		limiter:     limiter,
	}
}

// Authenticate checks the limiter before the credentials, so a throttled
// client gets ErrRateLimited even with a correct password.
func (s *Service) Authenticate(ctx context.Context, clientIP, username, password string) (*domain.User, error) {
	if !s.limiter.Allow(clientIP) {
		zap.L().Warn("login rate limit hit", zap.String("ip", clientIP))
		return nil, ErrRateLimited
	}

	username = strings.ToLower(username)
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(username, role string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(username, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}
