package toolservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/events"
	"github.com/GlebRadaev/aitools/internal/metrics"
	"github.com/GlebRadaev/aitools/internal/pg"
	"github.com/GlebRadaev/aitools/internal/worker"
	"github.com/GlebRadaev/aitools/pkg/slug"
)

var (
	ErrMissingFields       = errors.New("name, description, website_url and pricing_type are required")
	ErrInvalidName         = errors.New("name must contain letters or digits")
	ErrPaymentRequired     = errors.New("payment_id is required for paid listings")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentForbidden    = errors.New("payment belongs to another user")
	ErrPaymentNotCompleted = errors.New("payment is not completed")
	ErrPaymentAlreadyUsed  = errors.New("payment has already been used")
	ErrDuplicateSlug       = errors.New("A tool with this name already exists")
)

type ToolRepo interface {
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.Tool, error)
	Create(ctx context.Context, t *domain.Tool) (*domain.Tool, error)
	AddCategories(ctx context.Context, toolID string, categoryIDs []string) error
	AddTags(ctx context.Context, toolID string, tagIDs []string) error
}

type PaymentRepo interface {
	FindByProviderPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	LinkTool(ctx context.Context, id, toolID string) (bool, error)
}

type SubmissionRepo interface {
	Create(ctx context.Context, s *domain.Submission) error
}

type Pool interface {
	AddTask(ctx context.Context, task worker.Task) error
}

// Input is a tool submission as received from the client. PaymentStatus is
// informational only; the stored payment row is authoritative.
type Input struct {
	Name             string
	Description      string
	ShortDescription string
	WebsiteURL       string
	LogoURL          string
	PricingType      string
	ListingType      string
	PaymentID        string
	PaymentStatus    string
	CategoryIDs      []string
	TagIDs           []string
}

type Service struct {
	tools       ToolRepo
	payments    PaymentRepo
	submissions SubmissionRepo
	txManager   pg.TXManager
	pool        Pool
	publisher   events.Publisher
	now         func() time.Time
}

func New(
	tools ToolRepo,
	payments PaymentRepo,
	submissions SubmissionRepo,
	txManager pg.TXManager,
	pool Pool,
	publisher events.Publisher,
) *Service {
	return &Service{
		tools:       tools,
		payments:    payments,
		submissions: submissions,
		txManager:   txManager,
		pool:        pool,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, userID string, in Input) (*domain.Tool, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.WebsiteURL) == "" || strings.TrimSpace(in.PricingType) == "" {
		return nil, ErrMissingFields
	}
	toolSlug := slug.Make(in.Name)
	if toolSlug == "" {
		return nil, ErrInvalidName
	}
	listingType := in.ListingType
	if listingType == "" {
		listingType = domain.ListingTypeFree
	}
	if listingType == domain.ListingTypePaid && in.PaymentID == "" {
		return nil, ErrPaymentRequired
	}

	var payment *domain.Payment
	if in.PaymentID != "" {
		var err error
		payment, err = s.checkPayment(ctx, userID, in.PaymentID)
		if err != nil {
			return nil, err
		}
	}

	exists, err := s.tools.ExistsBySlug(ctx, toolSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		zap.L().Info("tool slug already taken", zap.String("slug", toolSlug))
		return nil, ErrDuplicateSlug
	}

	tool := &domain.Tool{
		Slug:             toolSlug,
		Name:             strings.TrimSpace(in.Name),
		Description:      in.Description,
		ShortDescription: optional(in.ShortDescription),
		WebsiteURL:       in.WebsiteURL,
		LogoURL:          optional(in.LogoURL),
		PricingType:      in.PricingType,
		Status:           domain.ToolStatusPending,
		ListingType:      listingType,
		SubmittedBy:      userID,
	}
	if payment != nil {
		tool.PaymentID = &payment.ID
	}

	var created *domain.Tool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.tools.Create(ctx, tool)
		if err != nil {
			return err
		}
		if payment == nil {
			return nil
		}
		linked, err := s.payments.LinkTool(ctx, payment.ID, created.ID)
		if err != nil {
			return err
		}
		if !linked {
			return fmt.Errorf("%w by another submission", ErrPaymentAlreadyUsed)
		}
		return nil
	})
	if err != nil {
		switch {
		case pg.IsUniqueViolation(err, "tools_slug_key"):
			return nil, ErrDuplicateSlug
		case pg.IsUniqueViolation(err, "payments_tool_id_key"), errors.Is(err, ErrPaymentAlreadyUsed):
			zap.L().Warn("payment consumed concurrently", zap.String("payment_id", in.PaymentID))
			return nil, fmt.Errorf("%w by another submission", ErrPaymentAlreadyUsed)
		}
		zap.L().Error("can't create tool", zap.String("slug", toolSlug), zap.Error(err))
		return nil, err
	}

	metrics.ToolSubmissions.WithLabelValues(listingType).Inc()
	zap.L().Info("tool submitted", zap.String("tool_id", created.ID), zap.String("slug", created.Slug), zap.String("user_id", userID))

	s.afterCommit(ctx, created, in.CategoryIDs, in.TagIDs)
	return created, nil
}

func (s *Service) checkPayment(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	payment, err := s.payments.FindByProviderPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.UserID != userID {
		zap.L().Warn("payment ownership mismatch", zap.String("payment_id", paymentID), zap.String("user_id", userID))
		return nil, ErrPaymentForbidden
	}
	if payment.Status != domain.PaymentStatusCompleted {
		return nil, fmt.Errorf("%w (status %s)", ErrPaymentNotCompleted, payment.Status)
	}
	if payment.ToolID != nil {
		return nil, fmt.Errorf("%w for tool %q", ErrPaymentAlreadyUsed, s.toolName(ctx, *payment.ToolID))
	}
	return payment, nil
}

func (s *Service) toolName(ctx context.Context, toolID string) string {
	tool, err := s.tools.FindByID(ctx, toolID)
	if err != nil || tool == nil {
		return toolID
	}
	return tool.Name
}

// afterCommit schedules the writes that must never undo an accepted submission.
func (s *Service) afterCommit(ctx context.Context, tool *domain.Tool, categoryIDs, tagIDs []string) {
	ctx = context.WithoutCancel(ctx)

	s.schedule(ctx, metrics.OpLinkCategories, tool.ID, func() error {
		return s.tools.AddCategories(ctx, tool.ID, categoryIDs)
	})
	s.schedule(ctx, metrics.OpLinkTags, tool.ID, func() error {
		return s.tools.AddTags(ctx, tool.ID, tagIDs)
	})
	s.schedule(ctx, metrics.OpSubmissionRecord, tool.ID, func() error {
		return s.submissions.Create(ctx, &domain.Submission{
			ToolID:    tool.ID,
			UserID:    tool.SubmittedBy,
			Status:    domain.ToolStatusPending,
			PaymentID: tool.PaymentID,
		})
	})
	s.schedule(ctx, metrics.OpPublishEvent, tool.ID, func() error {
		return s.publisher.Publish(ctx, events.ToolSubmitted, events.ToolEvent{
			ToolID:      tool.ID,
			Slug:        tool.Slug,
			SubmittedBy: tool.SubmittedBy,
			ListingType: tool.ListingType,
			PaymentID:   tool.PaymentID,
			OccurredAt:  s.now(),
		})
	})
}

func (s *Service) schedule(ctx context.Context, op, toolID string, fn func() error) {
	task := func() error {
		if err := fn(); err != nil {
			metrics.SecondaryWriteFailures.WithLabelValues(op).Inc()
			zap.L().Error("secondary write failed", zap.String("operation", op), zap.String("tool_id", toolID), zap.Error(err))
		}
		return nil
	}
	if err := s.pool.AddTask(ctx, task); err != nil {
		metrics.SecondaryWriteFailures.WithLabelValues(op).Inc()
		zap.L().Error("can't schedule secondary write", zap.String("operation", op), zap.String("tool_id", toolID), zap.Error(err))
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
