package submissionrepo

import (
	"context"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, s *domain.Submission) error {
	query := `
        INSERT INTO submissions (id, tool_id, user_id, status, payment_id)
        VALUES ($1, $2, $3, $4, $5)
    `
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, err := r.db.Exec(ctx, query, s.ID, s.ToolID, s.UserID, s.Status, s.PaymentID); err != nil {
		zap.L().Error("can't save submission", zap.Error(err), zap.String("tool_id", s.ToolID))
		return err
	}
	return nil
}
