package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/aitools/docs"
	"github.com/GlebRadaev/aitools/internal/domain"
	adminhandlers "github.com/GlebRadaev/aitools/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/aitools/internal/handlers/auth"
	paymenthandlers "github.com/GlebRadaev/aitools/internal/handlers/payment"
	toolhandlers "github.com/GlebRadaev/aitools/internal/handlers/tools"
	"github.com/GlebRadaev/aitools/internal/service"
	"github.com/GlebRadaev/aitools/pkg/auth"
	"github.com/GlebRadaev/aitools/pkg/ratelimit"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ToolHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	UpdatePaymentStatus(w http.ResponseWriter, r *http.Request)
	UpdatePaymentSettings(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	PaymentHandler PaymentHandler
	ToolHandler    ToolHandler
	AdminHandler   AdminHandler

	tokens  auth.TokenValidator
	roles   auth.RoleResolver
	limiter *ratelimit.Limiter
}

func New(s *service.Services, limiter *ratelimit.Limiter) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		ToolHandler:    toolhandlers.New(s.ToolService),
		AdminHandler:   adminhandlers.New(s.AdminService),
		tokens:         s.Tokens,
		roles:          s.Roles,
		limiter:        limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	authenticated := auth.AuthMiddleware(h.tokens, h.roles)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/payment", func(r chi.Router) {
			if h.limiter != nil {
				r.Use(h.limiter.Middleware)
			}
			r.Post("/verify", h.PaymentHandler.Verify)
			r.With(authenticated).Post("/process", h.PaymentHandler.Process)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Get("/payments", h.PaymentHandler.List)
			r.Post("/submit", h.ToolHandler.Submit)

			r.Route("/admin", func(r chi.Router) {
				r.With(auth.RequireRole(domain.RoleModerator, domain.RoleAdmin)).
					Patch("/payments/{id}/status", h.AdminHandler.UpdatePaymentStatus)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(domain.RoleAdmin))
					r.Post("/payments/reconcile", h.AdminHandler.Reconcile)
					r.Put("/settings/payment", h.AdminHandler.UpdatePaymentSettings)
				})
			})
		})
	})

	return r
}
