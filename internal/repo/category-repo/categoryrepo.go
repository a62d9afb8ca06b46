package categoryrepo

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

func (r *Repository) List(ctx context.Context) ([]domain.CustomCategory, error) {
	rows, err := r.db.Query(ctx, "SELECT name, image FROM custom_categories ORDER BY name")
	if err != nil {
		zap.L().Error("can't list custom categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.CustomCategory
	for rows.Next() {
		var c domain.CustomCategory
		if err := rows.Scan(&c.Name, &c.Image); err != nil {
			zap.L().Error("can't scan custom category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.CustomCategory, error) {
	var c domain.CustomCategory
	err := r.db.QueryRow(ctx, "SELECT name, image FROM custom_categories WHERE name = $1", name).Scan(&c.Name, &c.Image)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find custom category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, category *domain.CustomCategory) error {
	_, err := r.db.Exec(ctx, "INSERT INTO custom_categories (name, image) VALUES ($1, $2)", category.Name, category.Image)
	if err != nil {
		zap.L().Error("can't save custom category", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateImage(ctx context.Context, name, image string) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE custom_categories SET image = $2 WHERE name = $1", name, image)
	if err != nil {
		zap.L().Error("can't update custom category image", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, name string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM custom_categories WHERE name = $1", name)
	if err != nil {
		zap.L().Error("can't delete custom category", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
