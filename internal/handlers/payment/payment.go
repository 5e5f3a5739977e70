package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/dto"
	"github.com/GlebRadaev/aitools/internal/gateway/razorpay"
	"github.com/GlebRadaev/aitools/internal/service/paymentservice"
	"github.com/GlebRadaev/aitools/internal/service/settingsservice"
	"github.com/GlebRadaev/aitools/pkg/auth"
	"github.com/GlebRadaev/aitools/pkg/utils"
	"github.com/GlebRadaev/aitools/pkg/validate"
)

type Service interface {
	CreateOrder(ctx context.Context, userID string, amount int64, submissionID string) (*paymentservice.Order, error)
	Verify(ctx context.Context, orderID, paymentID, signature string) (*paymentservice.Verification, error)
	ListPayments(ctx context.Context, userID string) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Process godoc
//
//	@Summary		Create a payment order
//	@Description	Open a gateway order for a paid listing and record it as a pending payment
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ProcessPaymentRequestDTO	true	"Order request"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProcessPaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount or conflicting payment"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Gateway or internal error"
//	@Failure		503	{object}	utils.Response	"Payment gateway not configured"
//	@Router			/api/payment/process [post]
func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ProcessPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.paymentService.CreateOrder(r.Context(), userID, req.Amount, req.ToolSubmissionID)
	if err != nil {
		var gwErr *razorpay.Error
		switch {
		case errors.Is(err, paymentservice.ErrInvalidAmount),
			errors.Is(err, paymentservice.ErrPendingPaymentExists),
			errors.Is(err, paymentservice.ErrSubmissionAlreadyPaid):
			utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, settingsservice.ErrGatewayNotConfigured):
			utils.RespondWithError(w, r, http.StatusServiceUnavailable, err.Error())
		case errors.As(err, &gwErr):
			utils.RespondWithError(w, r, http.StatusInternalServerError, gwErr.Description)
		default:
			zap.L().Error("payment order failed", zap.String("user_id", userID), zap.Error(err))
			utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, r, http.StatusOK, dto.ProcessPaymentResponseDTO{
		Success:  true,
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    order.KeyID,
	})
}

// Verify godoc
//
//	@Summary		Verify a completed checkout
//	@Description	Check the gateway signature and mark the payment completed. Repeating a verified payment succeeds.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Gateway callback data"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing fields, invalid signature or reused payment id"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Failure		503		{object}	utils.Response	"Payment gateway not configured"
//	@Router			/api/payment/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.paymentService.Verify(r.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrMissingVerification),
			errors.Is(err, paymentservice.ErrInvalidSignature),
			errors.Is(err, paymentservice.ErrPaymentIDReused),
			errors.Is(err, paymentservice.ErrPaymentRefunded),
			errors.Is(err, paymentservice.ErrPaymentFailed):
			utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrPaymentNotFound):
			utils.RespondWithError(w, r, http.StatusNotFound, err.Error())
		case errors.Is(err, settingsservice.ErrGatewayNotConfigured):
			utils.RespondWithError(w, r, http.StatusServiceUnavailable, err.Error())
		default:
			zap.L().Error("payment verification failed", zap.String("order_id", req.RazorpayOrderID), zap.Error(err))
			utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, r, http.StatusOK, dto.VerifyPaymentResponseDTO{
		Success:   true,
		PaymentID: res.PaymentID,
		OrderID:   res.OrderID,
		Status:    res.Status,
	})
}

// List godoc
//
//	@Summary		List own payments
//	@Description	Payments of the authenticated user, newest first
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payments, err := h.paymentService.ListPayments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(payments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(payments))
	for _, p := range payments {
		paymentID := p.RazorpayPaymentID
		if paymentID == nil {
			paymentID = p.ProviderPaymentID
		}
		response = append(response, dto.PaymentResponseDTO{
			ID:        p.ID,
			OrderID:   p.RazorpayOrderID,
			PaymentID: paymentID,
			ToolID:    p.ToolID,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, r, http.StatusOK, response)
}
