package matrixrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/domain"
	"github.com/rewear/rewear-pos/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Find does an exact 4-tuple lookup; a missing entry is (nil, nil), not
// an error, because callers fall back to manual pricing.
func (r *Repository) Find(ctx context.Context, category, priceLevel, condition, relevance string) (*domain.PriceMatrixEntry, error) {
	query := `
        SELECT category, price_level, condition, relevance, fixed_price
        FROM price_matrix
        WHERE category = $1 AND price_level = $2 AND condition = $3 AND relevance = $4
    `
	var entry domain.PriceMatrixEntry
	err := r.db.QueryRow(ctx, query, category, priceLevel, condition, relevance).
		Scan(&entry.Category, &entry.PriceLevel, &entry.Condition, &entry.Relevance, &entry.FixedPrice)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find price matrix entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.PriceMatrixEntry, error) {
	query := `
        SELECT category, price_level, condition, relevance, fixed_price
        FROM price_matrix
        ORDER BY category, price_level, condition, relevance
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list price matrix", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PriceMatrixEntry
	for rows.Next() {
		var entry domain.PriceMatrixEntry
		if err := rows.Scan(&entry.Category, &entry.PriceLevel, &entry.Condition, &entry.Relevance, &entry.FixedPrice); err != nil {
			zap.L().Error("can't scan price matrix row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *Repository) Upsert(ctx context.Context, entry *domain.PriceMatrixEntry) error {
	query := `
        INSERT INTO price_matrix (category, price_level, condition, relevance, fixed_price)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (category, price_level, condition, relevance) DO UPDATE SET fixed_price = $5
    `
	_, err := r.db.Exec(ctx, query, entry.Category, entry.PriceLevel, entry.Condition, entry.Relevance, entry.FixedPrice)
	if err != nil {
		zap.L().Error("can't upsert price matrix entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context) (int, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM price_matrix")
	if err != nil {
		zap.L().Error("can't clear price matrix", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
