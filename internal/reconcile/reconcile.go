package reconcile

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/events"
	"github.com/GlebRadaev/aitools/internal/gateway/razorpay"
	"github.com/GlebRadaev/aitools/internal/metrics"
	"github.com/GlebRadaev/aitools/internal/pg"
	"github.com/GlebRadaev/aitools/internal/worker"
)

const (
	maxRetries    = 3
	retryInterval = time.Second
)

type Repo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) error
}

type Gateway interface {
	ListOrders(ctx context.Context, creds domain.GatewayCredentials, from time.Time, count int) ([]razorpay.Order, error)
}

type CredentialsProvider interface {
	Credentials(ctx context.Context) (domain.GatewayCredentials, error)
}

type Pool interface {
	AddTask(ctx context.Context, task worker.Task) error
}

// Service restores pending payment rows for gateway orders whose local
// insert was lost after the order had been created.
type Service struct {
	repo        Repo
	gateway     Gateway
	credentials CredentialsProvider
	pool        Pool
	publisher   events.Publisher
	interval    time.Duration
	lookback    time.Duration

	inFlight sync.Map
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

func New(
	repo Repo,
	gateway Gateway,
	credentials CredentialsProvider,
	pool Pool,
	publisher events.Publisher,
	interval, lookback time.Duration,
) *Service {
	return &Service{
		repo:        repo,
		gateway:     gateway,
		credentials: credentials,
		pool:        pool,
		publisher:   publisher,
		interval:    interval,
		lookback:    lookback,
		now:         time.Now,
		sleep:       sleepCtx,
	}
}

// Run reconciles every interval until ctx is done. A pass in progress is
// finished before Run returns.
func (s *Service) Run(ctx context.Context) {
	zap.L().Info("payment reconciler started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping reconciler")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				zap.L().Error("reconciliation pass failed", zap.Error(err))
			}
		}
	}
}

// RunOnce performs a single pass and returns how many rows were restored.
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		return 0, err
	}
	orders, err := s.listOrders(ctx, creds)
	if err != nil {
		return 0, err
	}

	var (
		restored atomic.Int64
		g        errgroup.Group
	)
	for _, order := range orders {
		if order.Notes["user_id"] == "" {
			continue
		}
		if _, loaded := s.inFlight.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan error, 1)
			err := s.pool.AddTask(ctx, func() (err error) {
				defer func() {
					s.inFlight.Delete(order.ID)
					done <- err
				}()
				ok, err := s.restore(ctx, order)
				if ok {
					restored.Add(1)
				}
				return err
			})
			if err != nil {
				s.inFlight.Delete(order.ID)
				return err
			}
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	err = g.Wait()
	n := int(restored.Load())
	if n > 0 {
		zap.L().Info("reconciliation restored payments", zap.Int("count", n))
	}
	return n, err
}

func (s *Service) listOrders(ctx context.Context, creds domain.GatewayCredentials) ([]razorpay.Order, error) {
	from := s.now().Add(-s.lookback)
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		var orders []razorpay.Order
		orders, err = s.gateway.ListOrders(ctx, creds, from, razorpay.MaxListCount)
		if err == nil {
			return orders, nil
		}

		var gwErr *razorpay.Error
		if !errors.As(err, &gwErr) || gwErr.StatusCode != http.StatusTooManyRequests || attempt == maxRetries {
			break
		}
		wait := gwErr.RetryAfter
		if wait <= 0 {
			wait = retryInterval * time.Duration(attempt)
		}
		zap.L().Warn("gateway rate limit, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
		if err := s.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("list gateway orders: %w", err)
}

func (s *Service) restore(ctx context.Context, order razorpay.Order) (bool, error) {
	existing, err := s.repo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	now := s.now()
	payment := &domain.Payment{
		ID:              uuid.NewString(),
		UserID:          order.Notes["user_id"],
		Amount:          order.Amount,
		Currency:        order.Currency,
		Status:          domain.PaymentStatusPending,
		RazorpayOrderID: order.ID,
		Metadata: map[string]any{
			"receipt":    order.Receipt,
			"purpose":    order.Notes["purpose"],
			"reconciled": true,
		},
		CreatedAt: order.Created(),
		UpdatedAt: now,
	}
	if id := order.Notes["tool_submission_id"]; id != "" {
		payment.ToolSubmissionID = &id
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		if pg.IsUniqueViolation(err, "") {
			return false, nil
		}
		return false, fmt.Errorf("restore order %s: %w", order.ID, err)
	}

	metrics.ReconciledOrders.Inc()
	zap.L().Info("restored missing payment row", zap.String("order_id", order.ID), zap.String("user_id", payment.UserID))

	err = s.publisher.Publish(ctx, events.PaymentReconciled, events.PaymentEvent{
		PaymentID:  payment.ID,
		UserID:     payment.UserID,
		OrderID:    order.ID,
		Amount:     payment.Amount,
		Currency:   payment.Currency,
		OccurredAt: now,
	})
	if err != nil {
		metrics.SecondaryWriteFailures.WithLabelValues(metrics.OpPublishEvent).Inc()
		zap.L().Warn("can't publish reconciliation event", zap.String("order_id", order.ID), zap.Error(err))
	}
	return true, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
