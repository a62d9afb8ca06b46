package settingsrepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rewear/rewear-pos/internal/pg"
)

const (
	KindGeneral = "general"
	KindReceipt = "receipt"
)

// Repository stores one typed settings document per kind. The payload
// is marshalled from an explicit struct, never merged from loose maps.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, kind string, out any) (bool, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, "SELECT payload FROM app_settings WHERE kind = $1", kind).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't load settings", zap.Error(err))
		return false, err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		zap.L().Error("can't decode settings payload", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) Put(ctx context.Context, kind string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO app_settings (kind, payload)
        VALUES ($1, $2)
        ON CONFLICT (kind) DO UPDATE SET payload = $2
    `
	if _, err := r.db.Exec(ctx, query, kind, payload); err != nil {
		zap.L().Error("can't save settings", zap.Error(err))
		return err
	}
	return nil
}
