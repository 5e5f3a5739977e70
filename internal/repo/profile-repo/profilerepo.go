package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
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

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := repo.db.QueryRow(ctx, "SELECT id, role, display_name, avatar_url, created_at FROM profiles WHERE id = $1", id).
		Scan(&p.ID, &p.Role, &p.DisplayName, &p.AvatarURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find profile", zap.Error(err), zap.String("user_id", id))
		return nil, err
	}
	return &p, nil
}

// Ensure returns the profile for id, creating it with the user role if absent.
func (repo *Repository) Ensure(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (id, role)
		VALUES ($1, 'user')
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING id, role, display_name, avatar_url, created_at
	`
	var p domain.Profile
	err := repo.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Role, &p.DisplayName, &p.AvatarURL, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't ensure profile", zap.Error(err), zap.String("user_id", id))
		return nil, err
	}
	return &p, nil
}
