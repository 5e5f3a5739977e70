package service

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/aitools/internal/config"
	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/events"
	"github.com/GlebRadaev/aitools/internal/gateway/razorpay"
	"github.com/GlebRadaev/aitools/internal/handlers/admin"
	"github.com/GlebRadaev/aitools/internal/handlers/auth"
	"github.com/GlebRadaev/aitools/internal/handlers/payment"
	"github.com/GlebRadaev/aitools/internal/handlers/tools"
	"github.com/GlebRadaev/aitools/internal/pg"
	"github.com/GlebRadaev/aitools/internal/reconcile"
	"github.com/GlebRadaev/aitools/internal/repo"
	"github.com/GlebRadaev/aitools/internal/service/adminservice"
	"github.com/GlebRadaev/aitools/internal/service/authservice"
	"github.com/GlebRadaev/aitools/internal/service/paymentservice"
	"github.com/GlebRadaev/aitools/internal/service/settingsservice"
	"github.com/GlebRadaev/aitools/internal/service/toolservice"
	"github.com/GlebRadaev/aitools/internal/worker"
	pkgauth "github.com/GlebRadaev/aitools/pkg/auth"
)

const settingsCacheTTL = 5 * time.Minute

// Deps are the shared runtime components the services are built on.
// Cache may be nil.
type Deps struct {
	TXManager pg.TXManager
	Gateway   *razorpay.Client
	Cache     settingsservice.Cache
	Publisher events.Publisher
	Pool      worker.WorkerPoolI
}

type Services struct {
	AuthService    auth.Service
	PaymentService payment.Service
	ToolService    tools.Service
	AdminService   admin.Service

	Tokens     pkgauth.TokenValidator
	Roles      pkgauth.RoleResolver
	Reconciler *reconcile.Service
}

func New(cfg *config.Config, repos *repo.Repositories, deps Deps) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(
		repos.UserRepo,
		repos.ProfileRepo,
		deps.TXManager,
		pkgauth.NewHashService(bcrypt.DefaultCost),
		jwtService,
		cfg.TokenTTL,
	)

	settings := settingsservice.New(
		domain.GatewayCredentials{KeyID: cfg.RazorpayKeyID, KeySecret: cfg.RazorpayKeySecret},
		repos.SettingsRepo,
		deps.TXManager,
		deps.Cache,
		settingsCacheTTL,
	)
	paymentService := paymentservice.New(repos.PaymentRepo, deps.Gateway, settings, deps.Publisher, cfg.Currency)
	toolService := toolservice.New(repos.ToolRepo, repos.PaymentRepo, repos.SubmissionRepo, deps.TXManager, deps.Pool, deps.Publisher)
	reconciler := reconcile.New(
		repos.PaymentRepo,
		deps.Gateway,
		settings,
		deps.Pool,
		deps.Publisher,
		cfg.ReconcileInterval,
		cfg.ReconcileLookback,
	)

	return &Services{
		AuthService:    authService,
		PaymentService: paymentService,
		ToolService:    toolService,
		AdminService:   adminservice.New(repos.PaymentRepo, settings, reconciler),
		Tokens:         jwtService,
		Roles:          authService,
		Reconciler:     reconciler,
	}
}
