package dto

type UpdatePaymentStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=refunded failed" example:"refunded"`
}

type PaymentSettingsRequestDTO struct {
	KeyID     string `json:"key_id" validate:"required"`
	KeySecret string `json:"key_secret" validate:"required"`
}

type ReconcileResponseDTO struct {
	Restored int `json:"restored" example:"1"`
}
