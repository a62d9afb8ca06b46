package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/pg"
)

// Repository persists the append-only credit ledger. There is no update
// and no single-row delete on purpose; rows only disappear when their
// customer is hard-deleted (cascade).
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	query := `
		INSERT INTO credit_transactions (id, customer_id, amount, type, description, reference_id, staff_username, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, tx.ID, tx.CustomerID, tx.Amount, tx.Type, tx.Description, tx.ReferenceID, tx.StaffUsername, tx.Timestamp).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't save credit transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListByCustomerID(ctx context.Context, customerID string) ([]domain.CreditTransaction, error) {
	query := `
        SELECT id, customer_id, amount, type, description, reference_id, staff_username, timestamp
        FROM credit_transactions
        WHERE customer_id = $1
        ORDER BY timestamp DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't list credit transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.CreditTransaction
	for rows.Next() {
		var tx domain.CreditTransaction
		if err := rows.Scan(&tx.ID, &tx.CustomerID, &tx.Amount, &tx.Type, &tx.Description, &tx.ReferenceID, &tx.StaffUsername, &tx.Timestamp); err != nil {
			zap.L().Error("can't scan credit transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// SumByCustomerID computes the authoritative balance from the log.
func (r *Repository) SumByCustomerID(ctx context.Context, customerID string) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM credit_transactions WHERE customer_id = $1", customerID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum credit transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.CreditTransaction, error) {
	query := `
        SELECT id, customer_id, amount, type, description, reference_id, staff_username, timestamp
        FROM credit_transactions
        ORDER BY timestamp DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list credit transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.CreditTransaction
	for rows.Next() {
		var tx domain.CreditTransaction
		if err := rows.Scan(&tx.ID, &tx.CustomerID, &tx.Amount, &tx.Type, &tx.Description, &tx.ReferenceID, &tx.StaffUsername, &tx.Timestamp); err != nil {
			zap.L().Error("can't scan credit transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
