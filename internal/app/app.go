package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/config"
	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/handlers"
	"github.com/rewear/rewear-pos/internal/pg"
	"github.com/rewear/rewear-pos/internal/repo"
	userrepo "github.com/rewear/rewear-pos/internal/repo/user-repo"
	"github.com/rewear/rewear-pos/internal/service"
	"github.com/rewear/rewear-pos/pkg/auth"
	"github.com/rewear/rewear-pos/pkg/logger"
	"github.com/rewear/rewear-pos/pkg/ratelimit"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = time.Minute
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	if err := bootstrapStaff(ctx, conn, cfg); err != nil {
		zap.L().Error("staff bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't bootstrap staff accounts: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	limiter := ratelimit.New(loginAttemptLimit, loginAttemptWindow)

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, jwtService, limiter)
	a.api = handlers.New(a.srv, jwtService, cfg.TrustProxy)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// bootstrapStaff upserts the two staff accounts so the configured
// passwords always win over whatever is stored.
func bootstrapStaff(ctx context.Context, conn pg.Database, cfg *config.Config) error {
	users := userrepo.New(conn)
	hasher := &auth.HashService{}

	accounts := []struct {
		username string
		password string
		role     string
	}{
		{username: "admin", password: cfg.AdminPassword, role: auth.RoleAdmin},
		{username: "smilla", password: cfg.StaffPassword, role: auth.RoleStaff},
	}
	for _, account := range accounts {
		hash, err := hasher.HashPassword(account.password)
		if err != nil {
			return err
		}
		_, err = users.Upsert(ctx, &domain.User{
			Username:     account.username,
			PasswordHash: hash,
			Role:         account.role,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
