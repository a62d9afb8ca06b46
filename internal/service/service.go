package service

import (
	"github.com/rewear/rewear-pos/internal/handlers/auth"
	"github.com/rewear/rewear-pos/internal/handlers/categories"
	"github.com/rewear/rewear-pos/internal/handlers/customers"
	"github.com/rewear/rewear-pos/internal/handlers/pricematrix"
	"github.com/rewear/rewear-pos/internal/handlers/purchases"
	"github.com/rewear/rewear-pos/internal/handlers/settings"
	"github.com/rewear/rewear-pos/internal/handlers/stats"

	pkgauth "github.com/rewear/rewear-pos/pkg/auth"
	"github.com/rewear/rewear-pos/pkg/ratelimit"

	"github.com/rewear/rewear-pos/internal/repo"
	authservice "github.com/rewear/rewear-pos/internal/service/authservice"
	categoryservice "github.com/rewear/rewear-pos/internal/service/categoryservice"
	ledgerservice "github.com/rewear/rewear-pos/internal/service/ledgerservice"
	matrixservice "github.com/rewear/rewear-pos/internal/service/matrixservice"
	purchaseservice "github.com/rewear/rewear-pos/internal/service/purchaseservice"
	settingsservice "github.com/rewear/rewear-pos/internal/service/settingsservice"
)

type Services struct {
	AuthService     auth.Service
	PurchaseService purchases.Service
	LedgerService   customers.Service
	MatrixService   pricematrix.Service
	CategoryService categories.Service
	SettingsService settings.Service
	StatsService    stats.Service
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface, limiter *ratelimit.Limiter) *Services {
	ledgerService := ledgerservice.New(repo.CustomerRepo, repo.TransactionRepo)
	categoryService := categoryservice.New(repo.CategoryRepo)
	purchaseService := purchaseservice.New(repo.PurchaseRepo, ledgerService, categoryService)
	matrixService := matrixservice.New(repo.MatrixRepo, categoryService)
	settingsService := settingsservice.New(repo.SettingsRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, limiter)

	return &Services{
		AuthService:     authService,
		PurchaseService: purchaseService,
		LedgerService:   ledgerService,
		MatrixService:   matrixService,
		CategoryService: categoryService,
		SettingsService: settingsService,
		StatsService:    purchaseService,
	}
}
