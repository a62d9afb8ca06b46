package purchaserepo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func testPurchase(now time.Time) *domain.Purchase {
	return &domain.Purchase{
		ID: "p-1",
		Items: []domain.PurchaseItem{
			{ID: "i-1", Category: "Jeans", PriceLevel: "Mittel", Condition: "Gut", Relevance: "Wichtig", Price: 12.5},
			{ID: "i-2", Category: "Kleider", PriceLevel: "Teuer", Condition: "Neu", Relevance: "Stark relevant", Price: 30},
		},
		Total:         42.5,
		Timestamp:     now,
		StaffUsername: "smilla",
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	purchase := testPurchase(now)
	items, err := json.Marshal(purchase.Items)
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save purchase successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO purchases (id, items, total, timestamp, staff_username, credit_customer_id, credit_customer_name)")).
					WithArgs(purchase.ID, items, purchase.Total, purchase.Timestamp, purchase.StaffUsername, purchase.CreditCustomerID, purchase.CreditCustomerName).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO purchases (id, items, total, timestamp, staff_username, credit_customer_id, credit_customer_name)")).
					WithArgs(purchase.ID, items, purchase.Total, purchase.Timestamp, purchase.StaffUsername, purchase.CreditCustomerID, purchase.CreditCustomerName).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Save(context.Background(), purchase)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func purchaseRows(t *testing.T, p *domain.Purchase) *pgxmock.Rows {
	t.Helper()
	items, err := json.Marshal(p.Items)
	require.NoError(t, err)
	return pgxmock.NewRows([]string{"id", "items", "total", "timestamp", "staff_username", "credit_customer_id", "credit_customer_name", "deleted", "deleted_at", "deleted_by"}).
		AddRow(p.ID, items, p.Total, p.Timestamp, p.StaffUsername, p.CreditCustomerID, p.CreditCustomerName, p.Deleted, p.DeletedAt, p.DeletedBy)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	purchase := testPurchase(now)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Purchase found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + purchaseColumns + " FROM purchases WHERE id = $1 AND NOT deleted")).
					WithArgs("p-1").
					WillReturnRows(purchaseRows(t, purchase))
			},
			found: true,
		},
		{
			name: "Purchase not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + purchaseColumns + " FROM purchases WHERE id = $1 AND NOT deleted")).
					WithArgs("p-1").
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + purchaseColumns + " FROM purchases WHERE id = $1 AND NOT deleted")).
					WithArgs("p-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), "p-1")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				require.NotNil(t, result)
				assert.Len(t, result.Items, 2)
				assert.InDelta(t, 42.5, result.Total, 0.001)
			} else {
				assert.Nil(t, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	purchase := testPurchase(now)
	start := now.Add(-24 * time.Hour)
	end := now

	t.Run("List without range", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT " + purchaseColumns + " FROM purchases WHERE NOT deleted")).
			WillReturnRows(purchaseRows(t, purchase))

		result, err := repo.List(context.Background(), nil, nil)
		assert.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "smilla", result[0].StaffUsername)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List with range", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("AND timestamp >= $1 AND timestamp <= $2")).
			WithArgs(start, end).
			WillReturnRows(purchaseRows(t, purchase))

		result, err := repo.List(context.Background(), &start, &end)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT " + purchaseColumns + " FROM purchases WHERE NOT deleted")).
			WillReturnError(errors.New("database error"))

		_, err := repo.List(context.Background(), nil, nil)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SoftDelete(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		deleted   bool
	}{
		{
			name: "Soft delete live purchase",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET deleted = TRUE, deleted_at = $2, deleted_by = $3")).
					WithArgs("p-1", now, "admin").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			deleted: true,
		},
		{
			name: "Already deleted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET deleted = TRUE, deleted_at = $2, deleted_by = $3")).
					WithArgs("p-1", now, "admin").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			deleted: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET deleted = TRUE, deleted_at = $2, deleted_by = $3")).
					WithArgs("p-1", now, "admin").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.SoftDelete(context.Background(), "p-1", "admin", now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.deleted, deleted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_SoftDeleteAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("SET deleted = TRUE, deleted_at = $1, deleted_by = $2")).
		WithArgs(now, "admin").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	count, err := repo.SoftDeleteAll(context.Background(), "admin", now)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DailyStats(t *testing.T) {
	repo, mock, _ := NewMock(t)
	since := time.Now().AddDate(0, 0, -30)

	rows := pgxmock.NewRows([]string{"date", "count", "total"}).
		AddRow("2026-09-01", 2, 33.0).
		AddRow("2026-08-31", 4, 120.5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT to_char(timestamp, 'YYYY-MM-DD') AS date, COUNT(*), COALESCE(SUM(total), 0)")).
		WithArgs(since).
		WillReturnRows(rows)

	stats, err := repo.DailyStats(context.Background(), since)
	assert.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2026-09-01", stats[0].Date)
	assert.Equal(t, 4, stats[1].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MonthlyStats(t *testing.T) {
	repo, mock, _ := NewMock(t)

	rows := pgxmock.NewRows([]string{"month", "count", "total"}).
		AddRow("2026-08", 41, 980.25)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT to_char(timestamp, 'YYYY-MM') AS month, COUNT(*), COALESCE(SUM(total), 0)")).
		WithArgs(12).
		WillReturnRows(rows)

	stats, err := repo.MonthlyStats(context.Background(), 12)
	assert.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2026-08", stats[0].Month)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TodayStats(t *testing.T) {
	repo, mock, _ := NewMock(t)
	dayStart := time.Now().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	t.Run("Aggregate today", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"count", "sum", "items"}).AddRow(6, 142.9, 17)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(jsonb_array_length(items)), 0)")).
			WithArgs(dayStart, dayEnd).
			WillReturnRows(rows)

		stats, err := repo.TodayStats(context.Background(), dayStart, dayEnd)
		assert.NoError(t, err)
		assert.Equal(t, 6, stats.TotalPurchases)
		assert.InDelta(t, 142.9, stats.TotalAmount, 0.001)
		assert.Equal(t, 17, stats.TotalItems)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COALESCE(SUM(total), 0), COALESCE(SUM(jsonb_array_length(items)), 0)")).
			WithArgs(dayStart, dayEnd).
			WillReturnError(errors.New("database error"))

		_, err := repo.TodayStats(context.Background(), dayStart, dayEnd)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
