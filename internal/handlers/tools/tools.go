package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/dto"
	"github.com/GlebRadaev/aitools/internal/service/toolservice"
	"github.com/GlebRadaev/aitools/pkg/auth"
	"github.com/GlebRadaev/aitools/pkg/utils"
	"github.com/GlebRadaev/aitools/pkg/validate"
)

type Service interface {
	Submit(ctx context.Context, userID string, in toolservice.Input) (*domain.Tool, error)
}

type ToolHandler struct {
	toolService Service
}

func New(toolService Service) *ToolHandler {
	return &ToolHandler{
		toolService: toolService,
	}
}

// Submit godoc
//
//	@Summary		Submit a tool for review
//	@Description	Create a tool in pending status. Paid listings must reference a completed, unused payment of the caller.
//	@Tags			Tools
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SubmitToolRequestDTO	true	"Tool submission"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.SubmitToolResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation error, payment problem or duplicate name"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Payment belongs to another user"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/submit [post]
func (h *ToolHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitToolRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	tool, err := h.toolService.Submit(r.Context(), userID, toolservice.Input{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		WebsiteURL:       req.WebsiteURL,
		LogoURL:          req.LogoURL,
		PricingType:      req.PricingType,
		ListingType:      req.ListingType,
		PaymentID:        req.PaymentID,
		PaymentStatus:    req.PaymentStatus,
		CategoryIDs:      req.CategoryIDs,
		TagIDs:           req.TagIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, toolservice.ErrPaymentForbidden):
			utils.RespondWithError(w, r, http.StatusForbidden, err.Error())
		case errors.Is(err, toolservice.ErrMissingFields),
			errors.Is(err, toolservice.ErrInvalidName),
			errors.Is(err, toolservice.ErrPaymentRequired),
			errors.Is(err, toolservice.ErrPaymentNotFound),
			errors.Is(err, toolservice.ErrPaymentNotCompleted),
			errors.Is(err, toolservice.ErrPaymentAlreadyUsed),
			errors.Is(err, toolservice.ErrDuplicateSlug):
			utils.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		default:
			zap.L().Error("tool submission failed", zap.String("user_id", userID), zap.Error(err))
			utils.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, r, http.StatusCreated, dto.SubmitToolResponseDTO{Tool: toDTO(tool)})
}

func toDTO(t *domain.Tool) dto.ToolDTO {
	return dto.ToolDTO{
		ID:               t.ID,
		Slug:             t.Slug,
		Name:             t.Name,
		Description:      t.Description,
		ShortDescription: t.ShortDescription,
		WebsiteURL:       t.WebsiteURL,
		LogoURL:          t.LogoURL,
		PricingType:      t.PricingType,
		Status:           t.Status,
		ListingType:      t.ListingType,
		PaymentID:        t.PaymentID,
		SubmittedBy:      t.SubmittedBy,
		CreatedAt:        t.CreatedAt,
	}
}
