package customerrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const customerColumns = "id, first_name, last_name, email, address, phone, current_balance, created_at"

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Address, &c.Phone, &c.CurrentBalance, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (id, first_name, last_name, email, address, phone, current_balance)
		VALUES ($1, $2, $3, $4, $5, $6, 0)
		RETURNING ` + customerColumns
	row := r.db.QueryRow(ctx, query, customer.ID, customer.FirstName, customer.LastName, customer.Email, customer.Address, customer.Phone)
	created, err := scanCustomer(row)
	if err != nil {
		zap.L().Error("can't save customer", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id)
	customer, err := scanCustomer(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find customer", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE lower(email) = lower($1)", email)
	customer, err := scanCustomer(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find customer by email", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

func (r *Repository) List(ctx context.Context, search string) ([]domain.Customer, error) {
	query := "SELECT " + customerColumns + " FROM customers"
	args := []any{}
	if search != "" {
		query += ` WHERE first_name ILIKE '%' || $1 || '%'
			OR last_name ILIKE '%' || $1 || '%'
			OR email ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list customers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Address, &c.Phone, &c.CurrentBalance, &c.CreatedAt); err != nil {
			zap.L().Error("can't scan customer row", zap.Error(err))
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *Repository) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, address = $5, phone = $6
		WHERE id = $1
		RETURNING ` + customerColumns
	row := r.db.QueryRow(ctx, query, customer.ID, customer.FirstName, customer.LastName, customer.Email, customer.Address, customer.Phone)
	updated, err := scanCustomer(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update customer", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// UpdateBalance persists the cached balance. The transaction log stays
// the source of truth; this value is only a read-through cache.
func (r *Repository) UpdateBalance(ctx context.Context, id string, balance float64) error {
	_, err := r.db.Exec(ctx, "UPDATE customers SET current_balance = $2 WHERE id = $1", id, balance)
	if err != nil {
		zap.L().Error("can't update customer balance", zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the customer; the transaction rows go with it via the
// ON DELETE CASCADE constraint. This is the one hard delete in the system.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
		if err != nil {
			zap.L().Error("can't delete customer", zap.Error(err))
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
