package ledgerservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rewear/rewear-pos/internal/domain"
)

//go:generate mockgen -source=ledgerservice.go -destination=mocks.go -package=ledgerservice CustomerRepo,TransactionRepo

type CustomerRepo interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateBalance(ctx context.Context, id string, balance float64) error
	Delete(ctx context.Context, id string) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]domain.CreditTransaction, error)
	SumByCustomerID(ctx context.Context, customerID string) (float64, error)
	ListAll(ctx context.Context) ([]domain.CreditTransaction, error)
}

var (
	ErrCustomerNotFound = errors.New("Kunde nicht gefunden")
	ErrEmailTaken       = errors.New("E-Mail-Adresse bereits vergeben")
	ErrUnknownKind      = errors.New("unbekannter Transaktionstyp")
)

const (
	AdjustCredit = "credit"
	AdjustDebit  = "debit"
)

type Service struct {
	customerRepo    CustomerRepo
	transactionRepo TransactionRepo
}

func New(customerRepo CustomerRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *Service) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	customer.ID = uuid.NewString()
	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		zap.L().Error("can't create customer", zap.Error(err))
		return nil, err
	}
	zap.L().Info("customer created", zap.String("id", created.ID))
	return created, nil
}

func (s *Service) CustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// GetCustomerWithTransactions returns the customer, their full history
// and the balance recomputed from the log. A drifted cache is corrected
// as a side effect so it self-heals on read.
func (s *Service) GetCustomerWithTransactions(ctx context.Context, id string) (*domain.Customer, []domain.CreditTransaction, error) {
	customer, err := s.CustomerByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	transactions, err := s.transactionRepo.ListByCustomerID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	balance := 0.0
	for _, tx := range transactions {
		balance += tx.Amount
	}
	if balance != customer.CurrentBalance {
		zap.L().Warn("balance cache drift corrected",
			zap.String("customer_id", id),
			zap.Float64("cached", customer.CurrentBalance),
			zap.Float64("actual", balance))
		if err := s.customerRepo.UpdateBalance(ctx, id, balance); err != nil {
			return nil, nil, err
		}
		customer.CurrentBalance = balance
	}

	return customer, transactions, nil
}

func (s *Service) ListCustomers(ctx context.Context, search string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.List(ctx, search)
	if err != nil {
		zap.L().Error("can't list customers", zap.Error(err))
		return nil, err
	}
	return customers, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != customer.ID {
		return nil, ErrEmailTaken
	}

	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrCustomerNotFound
	}
	return updated, nil
}

// DeleteCustomer is the one cascading hard delete: the customer's
// transactions are removed with the customer row.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	deleted, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCustomerNotFound
	}
	zap.L().Info("customer deleted with transactions", zap.String("id", id))
	return nil
}

// AppendTransaction writes an immutable ledger entry and refreshes the
// cached balance from the log. actingStaff always comes from the
// authenticated identity, never from request payload.
func (s *Service) AppendTransaction(ctx context.Context, customerID string, amount float64, txType, description, referenceID, actingStaff string) (*domain.CreditTransaction, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	tx := &domain.CreditTransaction{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		Amount:        amount,
		Type:          txType,
		Description:   description,
		ReferenceID:   referenceID,
		StaffUsername: actingStaff,
		Timestamp:     time.Now().UTC(),
	}
	if _, err := s.transactionRepo.Create(ctx, tx); err != nil {
		zap.L().Error("can't append credit transaction", zap.Error(err))
		return nil, err
	}

	balance, err := s.transactionRepo.SumByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.UpdateBalance(ctx, customerID, balance); err != nil {
		return nil, err
	}

	zap.L().Info("credit transaction appended",
		zap.String("customer_id", customerID),
		zap.String("type", txType),
		zap.Float64("amount", amount),
		zap.String("staff", actingStaff))
	return tx, nil
}

func (s *Service) GetBalance(ctx context.Context, customerID string) (float64, error) {
	if _, err := s.CustomerByID(ctx, customerID); err != nil {
		return 0, err
	}
	return s.transactionRepo.SumByCustomerID(ctx, customerID)
}

// ManualAdjust normalizes the sign from the requested kind: a credit is
// always stored positive, a debit always negative, whatever sign the
// caller passed.
func (s *Service) ManualAdjust(ctx context.Context, customerID string, amount float64, kind, description, referenceID, actingStaff string) (*domain.CreditTransaction, error) {
	magnitude := math.Abs(amount)

	var txType string
	switch strings.ToLower(kind) {
	case AdjustCredit:
		txType = domain.TransactionManualCredit
	case AdjustDebit:
		txType = domain.TransactionManualDebit
		magnitude = -magnitude
	default:
		return nil, ErrUnknownKind
	}

	return s.AppendTransaction(ctx, customerID, magnitude, txType, description, referenceID, actingStaff)
}

// Snapshot fetches all customers and all transactions concurrently for
// the export.
func (s *Service) Snapshot(ctx context.Context) ([]domain.Customer, []domain.CreditTransaction, error) {
	var (
		customers    []domain.Customer
		transactions []domain.CreditTransaction
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		customers, err = s.customerRepo.List(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.ListAll(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't assemble export snapshot", zap.Error(err))
		return nil, nil, err
	}
	return customers, transactions, nil
}
