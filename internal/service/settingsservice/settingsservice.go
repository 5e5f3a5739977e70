package settingsservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/pg"
)

const (
	PaymentCategory = "payment"
	KeyIDSetting    = "razorpay_key_id"
	SecretSetting   = "razorpay_key_secret"

	cacheKey = "settings:" + PaymentCategory
)

var ErrGatewayNotConfigured = errors.New(
	"payment gateway is not configured: set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET " +
		"or store razorpay_key_id and razorpay_key_secret under the \"payment\" settings category")

type Repo interface {
	GetCategory(ctx context.Context, category string) (map[string]string, error)
	Upsert(ctx context.Context, category, key, value string) error
}

type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Service resolves gateway credentials from the environment first and the
// settings table second. Settings rows are cached when a cache is configured.
type Service struct {
	env       domain.GatewayCredentials
	repo      Repo
	txManager pg.TXManager
	cache     Cache
	cacheTTL  time.Duration
}

// New accepts a nil cache.
func New(env domain.GatewayCredentials, repo Repo, txManager pg.TXManager, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{
		env:       env,
		repo:      repo,
		txManager: txManager,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *Service) Credentials(ctx context.Context) (domain.GatewayCredentials, error) {
	creds := s.env
	if creds.KeyID != "" && creds.KeySecret != "" {
		return creds, nil
	}

	stored, err := s.paymentSettings(ctx)
	if err != nil {
		return domain.GatewayCredentials{}, err
	}
	if creds.KeyID == "" {
		creds.KeyID = stored[KeyIDSetting]
	}
	if creds.KeySecret == "" {
		creds.KeySecret = stored[SecretSetting]
	}
	if creds.KeyID == "" || creds.KeySecret == "" {
		return domain.GatewayCredentials{}, ErrGatewayNotConfigured
	}
	return creds, nil
}

func (s *Service) paymentSettings(ctx context.Context) (map[string]string, error) {
	if s.cache != nil {
		var cached map[string]string
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			zap.L().Warn("settings cache read failed", zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	stored, err := s.repo.GetCategory(ctx, PaymentCategory)
	if err != nil {
		zap.L().Error("can't load payment settings", zap.Error(err))
		return nil, err
	}

	if s.cache != nil && len(stored) > 0 {
		if err := s.cache.Set(ctx, cacheKey, stored, s.cacheTTL); err != nil {
			zap.L().Warn("settings cache write failed", zap.Error(err))
		}
	}
	return stored, nil
}

func (s *Service) UpdatePaymentSettings(ctx context.Context, keyID, keySecret string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Upsert(ctx, PaymentCategory, KeyIDSetting, keyID); err != nil {
			return err
		}
		return s.repo.Upsert(ctx, PaymentCategory, SecretSetting, keySecret)
	})
	if err != nil {
		zap.L().Error("can't update payment settings", zap.Error(err))
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
			zap.L().Warn("settings cache invalidation failed", zap.Error(err))
		}
	}
	zap.L().Info("payment settings updated", zap.String("key_id", keyID))
	return nil
}
