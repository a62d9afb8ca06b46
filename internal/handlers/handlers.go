package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rewear/rewear-pos/docs"
	authhandlers "github.com/rewear/rewear-pos/internal/handlers/auth"
	categorieshandlers "github.com/rewear/rewear-pos/internal/handlers/categories"
	customershandlers "github.com/rewear/rewear-pos/internal/handlers/customers"
	pricematrixhandlers "github.com/rewear/rewear-pos/internal/handlers/pricematrix"
	purchaseshandlers "github.com/rewear/rewear-pos/internal/handlers/purchases"
	settingshandlers "github.com/rewear/rewear-pos/internal/handlers/settings"
	statshandlers "github.com/rewear/rewear-pos/internal/handlers/stats"
	"github.com/rewear/rewear-pos/internal/service"
	"github.com/rewear/rewear-pos/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	CreatePurchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
	GetPurchase(w http.ResponseWriter, r *http.Request)
	DeletePurchase(w http.ResponseWriter, r *http.Request)
	DeleteAllPurchases(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
}

type CustomerHandler interface {
	CreateCustomer(w http.ResponseWriter, r *http.Request)
	ListCustomers(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
	UpdateCustomer(w http.ResponseWriter, r *http.Request)
	DeleteCustomer(w http.ResponseWriter, r *http.Request)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	ExportExcel(w http.ResponseWriter, r *http.Request)
}

type MatrixHandler interface {
	Lookup(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type CategoryHandler interface {
	GetEnumerations(w http.ResponseWriter, r *http.Request)
	ListCustom(w http.ResponseWriter, r *http.Request)
	AddCustom(w http.ResponseWriter, r *http.Request)
	UpdateImage(w http.ResponseWriter, r *http.Request)
	DeleteCustom(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetGeneral(w http.ResponseWriter, r *http.Request)
	UpdateGeneral(w http.ResponseWriter, r *http.Request)
	GetReceipt(w http.ResponseWriter, r *http.Request)
	UpdateReceipt(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	GetDaily(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PurchaseHandler PurchaseHandler
	CustomerHandler CustomerHandler
	MatrixHandler   MatrixHandler
	CategoryHandler CategoryHandler
	SettingsHandler SettingsHandler
	StatsHandler    StatsHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, trustProxy bool) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService, trustProxy),
		PurchaseHandler: purchaseshandlers.New(s.PurchaseService),
		CustomerHandler: customershandlers.New(s.LedgerService),
		MatrixHandler:   pricematrixhandlers.New(s.MatrixService),
		CategoryHandler: categorieshandlers.New(s.CategoryService),
		SettingsHandler: settingshandlers.New(s.SettingsService),
		StatsHandler:    statshandlers.New(s.StatsService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Get("/categories", h.CategoryHandler.GetEnumerations)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Get("/auth/users", h.AuthHandler.ListUsers)

			r.Route("/custom-categories", func(r chi.Router) {
				r.Get("/", h.CategoryHandler.ListCustom)
				r.Post("/", h.CategoryHandler.AddCustom)
				r.Put("/{name}/image", h.CategoryHandler.UpdateImage)
				r.With(auth.RequireRole(auth.RoleAdmin)).Delete("/{name}", h.CategoryHandler.DeleteCustom)
			})

			r.Route("/price-matrix", func(r chi.Router) {
				r.Get("/", h.MatrixHandler.List)
				r.Get("/lookup", h.MatrixHandler.Lookup)
				r.Get("/download", h.MatrixHandler.Download)
				r.With(auth.RequireRole(auth.RoleAdmin)).Post("/upload", h.MatrixHandler.Upload)
				r.With(auth.RequireRole(auth.RoleAdmin)).Delete("/", h.MatrixHandler.Clear)
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", h.PurchaseHandler.CreatePurchase)
				r.Get("/", h.PurchaseHandler.GetPurchases)
				r.Get("/export/excel", h.PurchaseHandler.ExportExcel)
				r.Get("/{id}", h.PurchaseHandler.GetPurchase)
				r.With(auth.RequireRole(auth.RoleAdmin)).Delete("/{id}", h.PurchaseHandler.DeletePurchase)
				r.With(auth.RequireRole(auth.RoleAdmin)).Delete("/", h.PurchaseHandler.DeleteAllPurchases)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/daily", h.StatsHandler.GetDaily)
				r.Get("/monthly", h.StatsHandler.GetMonthly)
				r.Get("/today", h.StatsHandler.GetToday)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Post("/", h.CustomerHandler.CreateCustomer)
				r.Get("/", h.CustomerHandler.ListCustomers)
				r.With(auth.RequireRole(auth.RoleAdmin)).Get("/export/excel", h.CustomerHandler.ExportExcel)
				r.Get("/{id}", h.CustomerHandler.GetCustomer)
				r.Put("/{id}", h.CustomerHandler.UpdateCustomer)
				r.With(auth.RequireRole(auth.RoleAdmin)).Delete("/{id}", h.CustomerHandler.DeleteCustomer)
				r.Post("/{id}/transactions", h.CustomerHandler.CreateTransaction)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.SettingsHandler.GetGeneral)
				r.With(auth.RequireRole(auth.RoleAdmin)).Put("/", h.SettingsHandler.UpdateGeneral)
				r.Get("/receipt", h.SettingsHandler.GetReceipt)
				r.Put("/receipt", h.SettingsHandler.UpdateReceipt)
			})
		})
	})

	return r
}
