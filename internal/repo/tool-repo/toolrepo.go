package toolrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/pg"
)

const toolColumns = `id, slug, name, description, short_description, website_url, logo_url, pricing_type,
        status, listing_type, payment_id, submitted_by, view_count, rating_avg, rating_count, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM tools WHERE slug = $1)", slug).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check tool slug", zap.Error(err), zap.String("slug", slug))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Tool, error) {
	query := `
        SELECT ` + toolColumns + `
        FROM tools
        WHERE id = $1
    `
	var t domain.Tool
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Slug, &t.Name, &t.Description, &t.ShortDescription, &t.WebsiteURL, &t.LogoURL, &t.PricingType,
		&t.Status, &t.ListingType, &t.PaymentID, &t.SubmittedBy, &t.ViewCount, &t.RatingAvg, &t.RatingCount, &t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find tool", zap.Error(err), zap.String("tool_id", id))
		return nil, err
	}
	return &t, nil
}

// Create inserts the tool with zeroed counters. A slug collision surfaces as
// a unique violation on tools_slug_key.
func (r *Repository) Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error) {
	query := `
        INSERT INTO tools (id, slug, name, description, short_description, website_url, logo_url,
            pricing_type, status, listing_type, payment_id, submitted_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at
    `
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := r.db.QueryRow(ctx, query,
		t.ID, t.Slug, t.Name, t.Description, t.ShortDescription, t.WebsiteURL, t.LogoURL,
		t.PricingType, t.Status, t.ListingType, t.PaymentID, t.SubmittedBy,
	).Scan(&t.CreatedAt)
	if err != nil {
		zap.L().Error("can't save tool", zap.Error(err), zap.String("slug", t.Slug))
		return nil, err
	}
	t.ViewCount, t.RatingAvg, t.RatingCount = 0, 0, 0
	return t, nil
}

func (r *Repository) AddCategories(ctx context.Context, toolID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	query := `
        INSERT INTO tool_categories (tool_id, category_id)
        SELECT $1, unnest($2::uuid[])
        ON CONFLICT DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, toolID, categoryIDs); err != nil {
		zap.L().Error("can't link tool categories", zap.Error(err), zap.String("tool_id", toolID))
		return err
	}
	return nil
}

func (r *Repository) AddTags(ctx context.Context, toolID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	query := `
        INSERT INTO tool_tags (tool_id, tag_id)
        SELECT $1, unnest($2::uuid[])
        ON CONFLICT DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, toolID, tagIDs); err != nil {
		zap.L().Error("can't link tool tags", zap.Error(err), zap.String("tool_id", toolID))
		return err
	}
	return nil
}
