package purchaserepo

import (
	"context"
	"encoding/json"
	"time"

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

const purchaseColumns = "id, items, total, timestamp, staff_username, credit_customer_id, credit_customer_name, deleted, deleted_at, deleted_by"

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var p domain.Purchase
	var items []byte
	err := row.Scan(&p.ID, &items, &p.Total, &p.Timestamp, &p.StaffUsername, &p.CreditCustomerID, &p.CreditCustomerName, &p.Deleted, &p.DeletedAt, &p.DeletedBy)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, purchase *domain.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO purchases (id, items, total, timestamp, staff_username, credit_customer_id, credit_customer_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, purchase.ID, items, purchase.Total, purchase.Timestamp, purchase.StaffUsername, purchase.CreditCustomerID, purchase.CreditCustomerName)
		if err != nil {
			zap.L().Error("can't save purchase", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// FindByID only returns live purchases; soft-deleted records are kept
// in storage for audit but are not served.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	row := r.db.QueryRow(ctx, "SELECT "+purchaseColumns+" FROM purchases WHERE id = $1 AND NOT deleted", id)
	purchase, err := scanPurchase(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) List(ctx context.Context, startDate, endDate *time.Time) ([]domain.Purchase, error) {
	query := "SELECT " + purchaseColumns + " FROM purchases WHERE NOT deleted"
	args := []any{}
	if startDate != nil {
		args = append(args, *startDate)
		query += " AND timestamp >= $1"
	}
	if endDate != nil {
		args = append(args, *endDate)
		if len(args) == 1 {
			query += " AND timestamp <= $1"
		} else {
			query += " AND timestamp <= $2"
		}
	}
	query += " ORDER BY timestamp DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		var items []byte
		if err := rows.Scan(&p.ID, &items, &p.Total, &p.Timestamp, &p.StaffUsername, &p.CreditCustomerID, &p.CreditCustomerName, &p.Deleted, &p.DeletedAt, &p.DeletedBy); err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(items, &p.Items); err != nil {
			zap.L().Error("can't decode purchase items", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id, deletedBy string, deletedAt time.Time) (bool, error) {
	query := `
        UPDATE purchases
        SET deleted = TRUE, deleted_at = $2, deleted_by = $3
        WHERE id = $1 AND NOT deleted
    `
	tag, err := r.db.Exec(ctx, query, id, deletedAt, deletedBy)
	if err != nil {
		zap.L().Error("can't soft-delete purchase", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SoftDeleteAll(ctx context.Context, deletedBy string, deletedAt time.Time) (int, error) {
	query := `
        UPDATE purchases
        SET deleted = TRUE, deleted_at = $1, deleted_by = $2
        WHERE NOT deleted
    `
	tag, err := r.db.Exec(ctx, query, deletedAt, deletedBy)
	if err != nil {
		zap.L().Error("can't soft-delete purchases", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) DailyStats(ctx context.Context, since time.Time) ([]domain.DailyStat, error) {
	query := `
        SELECT to_char(timestamp, 'YYYY-MM-DD') AS date, COUNT(*), COALESCE(SUM(total), 0)
        FROM purchases
        WHERE NOT deleted AND timestamp >= $1
        GROUP BY 1
        ORDER BY 1 DESC
    `
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		zap.L().Error("can't aggregate daily stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stats []domain.DailyStat
	for rows.Next() {
		var s domain.DailyStat
		if err := rows.Scan(&s.Date, &s.Count, &s.Total); err != nil {
			zap.L().Error("can't scan daily stat row", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func (r *Repository) MonthlyStats(ctx context.Context, months int) ([]domain.MonthlyStat, error) {
	query := `
        SELECT to_char(timestamp, 'YYYY-MM') AS month, COUNT(*), COALESCE(SUM(total), 0)
        FROM purchases
        WHERE NOT deleted
        GROUP BY 1
        ORDER BY 1 DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, months)
	if err != nil {
		zap.L().Error("can't aggregate monthly stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stats []domain.MonthlyStat
	for rows.Next() {
		var s domain.MonthlyStat
		if err := rows.Scan(&s.Month, &s.Count, &s.Total); err != nil {
			zap.L().Error("can't scan monthly stat row", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// TodayStats counts live purchases of the given calendar day, item
// count included (items is a jsonb array).
func (r *Repository) TodayStats(ctx context.Context, dayStart, dayEnd time.Time) (*domain.TodayStats, error) {
	query := `
        SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(jsonb_array_length(items)), 0)
        FROM purchases
        WHERE NOT deleted AND timestamp >= $1 AND timestamp < $2
    `
	var s domain.TodayStats
	err := r.db.QueryRow(ctx, query, dayStart, dayEnd).Scan(&s.TotalPurchases, &s.TotalAmount, &s.TotalItems)
	if err != nil {
		zap.L().Error("can't aggregate today stats", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
