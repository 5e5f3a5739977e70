package settingsrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetCategory returns every key/value pair stored under category.
func (r *Repository) GetCategory(ctx context.Context, category string) (map[string]string, error) {
	rows, err := r.db.Query(ctx, "SELECT key, value FROM settings WHERE category = $1", category)
	if err != nil {
		zap.L().Error("can't load settings", zap.Error(err), zap.String("category", category))
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan settings row", zap.Error(err))
			return nil, err
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *Repository) Upsert(ctx context.Context, category, key, value string) error {
	query := `
        INSERT INTO settings (category, key, value, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (category, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
    `
	if _, err := r.db.Exec(ctx, query, category, key, value); err != nil {
		zap.L().Error("can't save setting", zap.Error(err), zap.String("category", category), zap.String("key", key))
		return err
	}
	return nil
}
