package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/events"
	"github.com/GlebRadaev/aitools/internal/gateway/razorpay"
	"github.com/GlebRadaev/aitools/internal/metrics"
	"github.com/GlebRadaev/aitools/internal/pg"
)

const (
	DuplicateWindow = 5 * time.Minute
	PurposeTool     = "tool_submission"

	maxReceiptLen = 40
)

var (
	ErrInvalidAmount         = errors.New("amount must be a positive integer")
	ErrPendingPaymentExists  = errors.New("a pending payment already exists")
	ErrSubmissionAlreadyPaid = errors.New("a payment already exists for this tool submission")
	ErrMissingVerification   = errors.New("razorpay_order_id, razorpay_payment_id and razorpay_signature are required")
	ErrPaymentIDReused       = errors.New("payment id is already associated with a different order")
	ErrInvalidSignature      = errors.New("Invalid payment signature")
	ErrPaymentNotFound       = errors.New("Payment not found")
	ErrPaymentRefunded       = errors.New("payment has been refunded")
	ErrPaymentFailed         = errors.New("payment has been marked failed")
)

type Repo interface {
	Create(ctx context.Context, p *domain.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	FindByProviderPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	FindRecentPendingByUser(ctx context.Context, userID string, since time.Time) (*domain.Payment, error)
	FindActiveBySubmission(ctx context.Context, submissionID string) (*domain.Payment, error)
	MarkCompleted(ctx context.Context, id, paymentID string, metadata map[string]any) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Payment, error)
}

type Gateway interface {
	CreateOrder(ctx context.Context, creds domain.GatewayCredentials, req razorpay.OrderRequest) (*razorpay.Order, error)
}

type CredentialsProvider interface {
	Credentials(ctx context.Context) (domain.GatewayCredentials, error)
}

type Order struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
}

type Verification struct {
	PaymentID string
	OrderID   string
	Status    string
}

type Service struct {
	repo        Repo
	gateway     Gateway
	credentials CredentialsProvider
	publisher   events.Publisher
	currency    string
	now         func() time.Time

	retryBase  time.Duration
	maxRetries uint64
}

func New(repo Repo, gateway Gateway, credentials CredentialsProvider, publisher events.Publisher, currency string) *Service {
	return &Service{
		repo:        repo,
		gateway:     gateway,
		credentials: credentials,
		publisher:   publisher,
		currency:    currency,
		now:         time.Now,
		retryBase:   100 * time.Millisecond,
		maxRetries:  2,
	}
}

// Receipt is "rcpt_<unix millis>_<first 8 chars of user id>", capped at 40 characters.
func Receipt(now time.Time, userID string) string {
	fragment := userID
	if len(fragment) > 8 {
		fragment = fragment[:8]
	}
	receipt := "rcpt_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + fragment
	if len(receipt) > maxReceiptLen {
		receipt = receipt[:maxReceiptLen]
	}
	return receipt
}

// CreateOrder opens a gateway order and records it as a pending payment.
// When the local row cannot be stored after retries the order id is still
// returned and the reconciler picks the order up later.
func (s *Service) CreateOrder(ctx context.Context, userID string, amount int64, submissionID string) (*Order, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	now := s.now()

	pending, err := s.repo.FindRecentPendingByUser(ctx, userID, now.Add(-DuplicateWindow))
	if err != nil {
		return nil, err
	}
	if pending != nil {
		metrics.PaymentOrders.WithLabelValues(metrics.ResultConflict).Inc()
		wait := pending.CreatedAt.Add(DuplicateWindow).Sub(now).Round(time.Second)
		return nil, fmt.Errorf("%w (order %s); complete it or retry in %s", ErrPendingPaymentExists, pending.RazorpayOrderID, wait)
	}

	var submissionRef *string
	if submissionID != "" {
		submissionRef = &submissionID
		active, err := s.repo.FindActiveBySubmission(ctx, submissionID)
		if err != nil {
			return nil, err
		}
		if active != nil {
			metrics.PaymentOrders.WithLabelValues(metrics.ResultConflict).Inc()
			return nil, fmt.Errorf("%w (order %s, status %s)", ErrSubmissionAlreadyPaid, active.RazorpayOrderID, active.Status)
		}
	}

	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		metrics.PaymentOrders.WithLabelValues(metrics.ResultNotConfigured).Inc()
		return nil, err
	}

	receipt := Receipt(now, userID)
	notes := razorpay.Notes{"user_id": userID, "purpose": PurposeTool}
	if submissionID != "" {
		notes["tool_submission_id"] = submissionID
	}
	order, err := s.gateway.CreateOrder(ctx, creds, razorpay.OrderRequest{
		Amount:   amount,
		Currency: s.currency,
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		metrics.PaymentOrders.WithLabelValues(metrics.ResultGatewayError).Inc()
		zap.L().Error("gateway order creation failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	currency := order.Currency
	if currency == "" {
		currency = s.currency
	}
	payment := &domain.Payment{
		ID:               uuid.NewString(),
		UserID:           userID,
		ToolSubmissionID: submissionRef,
		Amount:           amount,
		Currency:         currency,
		Status:           domain.PaymentStatusPending,
		RazorpayOrderID:  order.ID,
		Metadata: map[string]any{
			"receipt": receipt,
			"purpose": PurposeTool,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.persistPending(ctx, payment); err != nil {
		metrics.PaymentOrders.WithLabelValues(metrics.ResultPersistFailed).Inc()
		metrics.SecondaryWriteFailures.WithLabelValues(metrics.OpPersistPendingOrder).Inc()
		zap.L().Error("gateway order created but pending payment not stored",
			zap.String("order_id", order.ID), zap.String("user_id", userID), zap.Error(err))
	} else {
		metrics.PaymentOrders.WithLabelValues(metrics.ResultOK).Inc()
	}

	zap.L().Info("payment order created", zap.String("order_id", order.ID), zap.String("user_id", userID), zap.Int64("amount", amount))
	return &Order{
		OrderID:  order.ID,
		Amount:   amount,
		Currency: currency,
		KeyID:    creds.KeyID,
	}, nil
}

func (s *Service) persistPending(ctx context.Context, payment *domain.Payment) error {
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.repo.Create(ctx, payment)
		if err == nil || pg.IsUniqueViolation(err, "") {
			return err
		}
		zap.L().Warn("retrying pending payment insert", zap.String("order_id", payment.RazorpayOrderID), zap.Error(err))
		return retry.RetryableError(err)
	})
}

// Verify checks the checkout callback and marks the payment completed once.
func (s *Service) Verify(ctx context.Context, orderID, paymentID, signature string) (*Verification, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, ErrMissingVerification
	}

	existing, err := s.repo.FindByProviderPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == domain.PaymentStatusCompleted {
			metrics.PaymentVerifications.WithLabelValues(metrics.ResultIdempotent).Inc()
			return &Verification{PaymentID: paymentID, OrderID: existing.RazorpayOrderID, Status: domain.PaymentStatusCompleted}, nil
		}
		if existing.RazorpayOrderID != orderID {
			metrics.PaymentVerifications.WithLabelValues(metrics.ResultConflict).Inc()
			zap.L().Warn("payment id presented for a different order",
				zap.String("payment_id", paymentID), zap.String("order_id", orderID), zap.String("stored_order_id", existing.RazorpayOrderID))
			return nil, ErrPaymentIDReused
		}
	}

	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		return nil, err
	}
	if !razorpay.VerifySignature(creds.KeySecret, orderID, paymentID, signature) {
		metrics.PaymentVerifications.WithLabelValues(metrics.ResultInvalid).Inc()
		zap.L().Warn("invalid payment signature", zap.String("order_id", orderID), zap.String("payment_id", paymentID))
		return nil, ErrInvalidSignature
	}

	payment, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	switch payment.Status {
	case domain.PaymentStatusCompleted:
		metrics.PaymentVerifications.WithLabelValues(metrics.ResultIdempotent).Inc()
		return &Verification{PaymentID: paymentID, OrderID: orderID, Status: domain.PaymentStatusCompleted}, nil
	case domain.PaymentStatusRefunded:
		return nil, ErrPaymentRefunded
	case domain.PaymentStatusFailed:
		zap.L().Warn("verification for a failed payment", zap.String("order_id", orderID), zap.String("payment_id", paymentID))
		return nil, ErrPaymentFailed
	}

	updated, err := s.repo.MarkCompleted(ctx, payment.ID, paymentID, map[string]any{
		"verified_at":         s.now().UTC().Format(time.RFC3339),
		"razorpay_signature":  signature,
		"verification_source": "checkout_callback",
	})
	if err != nil {
		if pg.IsUniqueViolation(err, "payments_razorpay_payment_id_key") {
			metrics.PaymentVerifications.WithLabelValues(metrics.ResultConflict).Inc()
			return nil, ErrPaymentIDReused
		}
		metrics.PaymentVerifications.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	if !updated {
		metrics.PaymentVerifications.WithLabelValues(metrics.ResultIdempotent).Inc()
		return &Verification{PaymentID: paymentID, OrderID: orderID, Status: domain.PaymentStatusCompleted}, nil
	}

	metrics.PaymentVerifications.WithLabelValues(metrics.ResultOK).Inc()
	zap.L().Info("payment completed", zap.String("order_id", orderID), zap.String("payment_id", paymentID))

	err = s.publisher.Publish(ctx, events.PaymentCompleted, events.PaymentEvent{
		PaymentID:  payment.ID,
		UserID:     payment.UserID,
		OrderID:    orderID,
		ProviderID: paymentID,
		Amount:     payment.Amount,
		Currency:   payment.Currency,
		OccurredAt: s.now(),
	})
	if err != nil {
		metrics.SecondaryWriteFailures.WithLabelValues(metrics.OpPublishEvent).Inc()
		zap.L().Warn("can't publish payment event", zap.String("order_id", orderID), zap.Error(err))
	}

	return &Verification{PaymentID: paymentID, OrderID: orderID, Status: domain.PaymentStatusCompleted}, nil
}

func (s *Service) ListPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	payments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't list payments", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return payments, nil
}
