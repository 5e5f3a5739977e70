package adminservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidTransition = errors.New("invalid payment status transition")
	ErrMissingSettings   = errors.New("key_id and key_secret are required")
)

// allowedFrom maps a target status to the only status it may be reached from.
var allowedFrom = map[string]string{
	domain.PaymentStatusRefunded: domain.PaymentStatusCompleted,
	domain.PaymentStatusFailed:   domain.PaymentStatusPending,
}

type PaymentRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
}

type SettingsUpdater interface {
	UpdatePaymentSettings(ctx context.Context, keyID, secret string) error
}

type Reconciler interface {
	RunOnce(ctx context.Context) (int, error)
}

type Service struct {
	payments   PaymentRepo
	settings   SettingsUpdater
	reconciler Reconciler
}

func New(payments PaymentRepo, settings SettingsUpdater, reconciler Reconciler) *Service {
	return &Service{
		payments:   payments,
		settings:   settings,
		reconciler: reconciler,
	}
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id, status string) (*domain.Payment, error) {
	from, ok := allowedFrom[status]
	if !ok {
		return nil, fmt.Errorf("%w: cannot set status %q", ErrInvalidTransition, status)
	}

	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	if payment.Status != from {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, payment.Status, status)
	}

	updated, err := s.payments.UpdateStatus(ctx, id, from, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: payment changed concurrently", ErrInvalidTransition)
	}

	zap.L().Info("payment status changed", zap.String("payment_id", id), zap.String("from", from), zap.String("to", status))
	payment.Status = status
	return payment, nil
}

func (s *Service) UpdatePaymentSettings(ctx context.Context, keyID, secret string) error {
	if keyID == "" || secret == "" {
		return ErrMissingSettings
	}
	return s.settings.UpdatePaymentSettings(ctx, keyID, secret)
}

func (s *Service) Reconcile(ctx context.Context) (int, error) {
	n, err := s.reconciler.RunOnce(ctx)
	if err != nil {
		zap.L().Error("manual reconciliation failed", zap.Error(err))
		return n, err
	}
	return n, nil
}
