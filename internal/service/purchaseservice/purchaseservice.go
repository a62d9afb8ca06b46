package purchaseservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
)

//go:generate mockgen -source=purchaseservice.go -destination=mocks.go -package=purchaseservice Repo,Ledger,CatalogProvider

type Repo interface {
	Save(ctx context.Context, purchase *domain.Purchase) error
	FindByID(ctx context.Context, id string) (*domain.Purchase, error)
	List(ctx context.Context, startDate, endDate *time.Time) ([]domain.Purchase, error)
	SoftDelete(ctx context.Context, id, deletedBy string, deletedAt time.Time) (bool, error)
	SoftDeleteAll(ctx context.Context, deletedBy string, deletedAt time.Time) (int, error)
	DailyStats(ctx context.Context, since time.Time) ([]domain.DailyStat, error)
	MonthlyStats(ctx context.Context, months int) ([]domain.MonthlyStat, error)
	TodayStats(ctx context.Context, dayStart, dayEnd time.Time) (*domain.TodayStats, error)
}

// Ledger is the slice of the credit ledger the recorder needs: resolve
// the credit customer and route a purchase total into their balance.
type Ledger interface {
	CustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	AppendTransaction(ctx context.Context, customerID string, amount float64, txType, description, referenceID, actingStaff string) (*domain.CreditTransaction, error)
}

type CatalogProvider interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
}

var (
	ErrNoItems          = errors.New("Ankauf ohne Artikel")
	ErrInvalidItem      = errors.New("ungültiger Artikel")
	ErrPurchaseNotFound = errors.New("Ankauf nicht gefunden")
)

type ItemInput struct {
	Category   string
	PriceLevel string
	Condition  string
	Relevance  string
	Price      float64
}

type Service struct {
	purchaseRepo Repo
	ledger       Ledger
	catalog      CatalogProvider
}

func New(purchaseRepo Repo, ledger Ledger, catalog CatalogProvider) *Service {
	return &Service{
		purchaseRepo: purchaseRepo,
		ledger:       ledger,
		catalog:      catalog,
	}
}

// Create validates the line items strictly (unlike the lenient matrix
// upload), computes the total server-side and, for a credit customer,
// appends the matching purchase_credit ledger entry. actingStaff is the
// authenticated identity; nothing in the payload can override it.
func (s *Service) Create(ctx context.Context, items []ItemInput, creditCustomerID, actingStaff string) (*domain.Purchase, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	purchaseItems := make([]domain.PurchaseItem, 0, len(items))
	total := 0.0
	for _, item := range items {
		if err := validateItem(catalog, item); err != nil {
			return nil, err
		}
		purchaseItems = append(purchaseItems, domain.PurchaseItem{
			ID:         uuid.NewString(),
			Category:   item.Category,
			PriceLevel: item.PriceLevel,
			Condition:  item.Condition,
			Relevance:  item.Relevance,
			Price:      item.Price,
		})
		total += item.Price
	}

	purchase := &domain.Purchase{
		ID:            uuid.NewString(),
		Items:         purchaseItems,
		Total:         total,
		Timestamp:     time.Now().UTC(),
		StaffUsername: actingStaff,
	}

	if creditCustomerID != "" {
		customer, err := s.ledger.CustomerByID(ctx, creditCustomerID)
		if err != nil {
			return nil, err
		}

		description := fmt.Sprintf("Ankauf %s (%d Artikel)", shortID(purchase.ID), len(purchaseItems))
		if _, err := s.ledger.AppendTransaction(ctx, creditCustomerID, total, domain.TransactionPurchaseCredit, description, purchase.ID, actingStaff); err != nil {
			return nil, err
		}

		purchase.CreditCustomerID = creditCustomerID
		purchase.CreditCustomerName = customer.DisplayName()
	}

	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}

	zap.L().Info("purchase recorded",
		zap.String("id", purchase.ID),
		zap.Float64("total", total),
		zap.Int("items", len(purchaseItems)),
		zap.String("staff", actingStaff))
	return purchase, nil
}

func validateItem(catalog *domain.Catalog, item ItemInput) error {
	switch {
	case !catalog.HasCategory(item.Category):
		return fmt.Errorf("%w: unbekannte Kategorie %q", ErrInvalidItem, item.Category)
	case !catalog.HasPriceLevel(item.PriceLevel):
		return fmt.Errorf("%w: unbekanntes Preisniveau %q", ErrInvalidItem, item.PriceLevel)
	case !catalog.HasCondition(item.Condition):
		return fmt.Errorf("%w: unbekannter Zustand %q", ErrInvalidItem, item.Condition)
	case !catalog.HasRelevance(item.Relevance):
		return fmt.Errorf("%w: unbekannte Relevanz %q", ErrInvalidItem, item.Relevance)
	case item.Price < 0:
		return fmt.Errorf("%w: negativer Preis", ErrInvalidItem)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, ErrPurchaseNotFound
	}
	return purchase, nil
}

func (s *Service) List(ctx context.Context, startDate, endDate *time.Time) ([]domain.Purchase, error) {
	purchases, err := s.purchaseRepo.List(ctx, startDate, endDate)
	if err != nil {
		zap.L().Error("can't list purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}

// SoftDelete keeps the record for audit and leaves any purchase_credit
// transaction in place; reversals are not written.
func (s *Service) SoftDelete(ctx context.Context, id, actingStaff string) error {
	deleted, err := s.purchaseRepo.SoftDelete(ctx, id, actingStaff, time.Now().UTC())
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPurchaseNotFound
	}
	zap.L().Info("purchase soft-deleted", zap.String("id", id), zap.String("staff", actingStaff))
	return nil
}

func (s *Service) SoftDeleteAll(ctx context.Context, actingStaff string) (int, error) {
	count, err := s.purchaseRepo.SoftDeleteAll(ctx, actingStaff, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	zap.L().Info("all purchases soft-deleted", zap.Int("count", count), zap.String("staff", actingStaff))
	return count, nil
}

func (s *Service) DailyStats(ctx context.Context, days int) ([]domain.DailyStat, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	return s.purchaseRepo.DailyStats(ctx, since)
}

func (s *Service) MonthlyStats(ctx context.Context, months int) ([]domain.MonthlyStat, error) {
	return s.purchaseRepo.MonthlyStats(ctx, months)
}

func (s *Service) TodayStats(ctx context.Context) (*domain.TodayStats, error) {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats, err := s.purchaseRepo.TodayStats(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	stats.Date = dayStart.Format("2006-01-02")
	return stats, nil
}
