package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/pg"
)

const paymentColumns = `id, user_id, tool_id, tool_submission_id, amount, currency, status,
        razorpay_order_id, razorpay_payment_id, provider_payment_id, metadata, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.UserID, &p.ToolID, &p.ToolSubmissionID, &p.Amount, &p.Currency, &p.Status,
		&p.RazorpayOrderID, &p.RazorpayPaymentID, &p.ProviderPaymentID, &p.Metadata, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Payment) error {
	query := `
        INSERT INTO payments (id, user_id, tool_submission_id, amount, currency, status, razorpay_order_id, metadata, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.ToolSubmissionID, p.Amount, p.Currency, p.Status, p.RazorpayOrderID, p.Metadata, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err), zap.String("order_id", p.RazorpayOrderID))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE razorpay_order_id = $1
    `
	return r.findOne(ctx, query, orderID)
}

// FindByProviderPaymentID matches either provider identifier column.
func (r *Repository) FindByProviderPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE razorpay_payment_id = $1 OR provider_payment_id = $1
        ORDER BY updated_at DESC
        LIMIT 1
    `
	return r.findOne(ctx, query, paymentID)
}

func (r *Repository) FindRecentPendingByUser(ctx context.Context, userID string, since time.Time) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE user_id = $1 AND status = 'pending' AND created_at >= $2
        ORDER BY created_at DESC
        LIMIT 1
    `
	return r.findOne(ctx, query, userID, since)
}

func (r *Repository) FindActiveBySubmission(ctx context.Context, submissionID string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE tool_submission_id = $1 AND status IN ('pending', 'completed')
        ORDER BY created_at DESC
        LIMIT 1
    `
	return r.findOne(ctx, query, submissionID)
}

// MarkCompleted flips a pending payment to completed and merges
// metadata into the stored object. It reports false when nothing changed.
func (r *Repository) MarkCompleted(ctx context.Context, id, paymentID string, metadata map[string]any) (bool, error) {
	query := `
        UPDATE payments
        SET status = 'completed', razorpay_payment_id = $2, provider_payment_id = $2,
            metadata = metadata || $3::jsonb, updated_at = NOW()
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id, paymentID, metadata)
	if err != nil {
		zap.L().Error("failed to complete payment", zap.Error(err), zap.String("payment_id", id))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// LinkTool attaches toolID to a payment that has not been used yet.
func (r *Repository) LinkTool(ctx context.Context, id, toolID string) (bool, error) {
	query := `
        UPDATE payments
        SET tool_id = $2, updated_at = NOW()
        WHERE id = $1 AND tool_id IS NULL
    `
	tag, err := r.db.Exec(ctx, query, id, toolID)
	if err != nil {
		zap.L().Error("failed to link payment to tool", zap.Error(err), zap.String("payment_id", id))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatus moves a payment from one status to another and reports false
// when the payment was not in the expected status.
func (r *Repository) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	query := `
        UPDATE payments
        SET status = $3, updated_at = NOW()
        WHERE id = $1 AND status = $2
    `
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		zap.L().Error("failed to update payment status", zap.Error(err), zap.String("payment_id", id))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment rows", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
