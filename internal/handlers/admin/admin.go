package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/dto"
	"github.com/GlebRadaev/aitools/internal/service/adminservice"
	"github.com/GlebRadaev/aitools/internal/service/settingsservice"
	"github.com/GlebRadaev/aitools/pkg/utils"
	"github.com/GlebRadaev/aitools/pkg/validate"
)

type Service interface {
	UpdatePaymentStatus(ctx context.Context, id, status string) (*domain.Payment, error)
	UpdatePaymentSettings(ctx context.Context, keyID, secret string) error
	Reconcile(ctx context.Context) (int, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// UpdatePaymentStatus godoc
//
//	@Summary		Refund or fail a payment
//	@Description	refunded is allowed only from completed, failed only from pending
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Payment id"
//	@Param			request	body	dto.UpdatePaymentStatusRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Illegal transition"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments/{id}/status [patch]
func (h *AdminHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePaymentStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.adminService.UpdatePaymentStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidTransition):
			utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminservice.ErrPaymentNotFound):
			utils.RespondWithError(w, r, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, r, http.StatusOK, dto.PaymentResponseDTO{
		ID:        p.ID,
		OrderID:   p.RazorpayOrderID,
		PaymentID: p.RazorpayPaymentID,
		ToolID:    p.ToolID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	})
}

// UpdatePaymentSettings godoc
//
//	@Summary		Store gateway credentials
//	@Description	Used when the environment does not provide them
//	@Tags			Admin
//	@Accept			json
//	@Param			request	body	dto.PaymentSettingsRequestDTO	true	"Gateway key pair"
//	@Security		BearerAuth
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settings/payment [put]
func (h *AdminHandler) UpdatePaymentSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.adminService.UpdatePaymentSettings(r.Context(), req.KeyID, req.KeySecret); err != nil {
		if errors.Is(err, adminservice.ErrMissingSettings) {
			utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reconcile godoc
//
//	@Summary		Restore missing payment rows
//	@Description	Run one reconciliation pass against the gateway order list
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReconcileResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Failure		503	{object}	utils.Response	"Payment gateway not configured"
//	@Router			/api/admin/payments/reconcile [post]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	n, err := h.adminService.Reconcile(r.Context())
	if err != nil {
		if errors.Is(err, settingsservice.ErrGatewayNotConfigured) {
			utils.RespondWithError(w, r, http.StatusServiceUnavailable, err.Error())
			return
		}
		utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, r, http.StatusOK, dto.ReconcileResponseDTO{Restored: n})
}
