package dto

import "time"

type ProcessPaymentRequestDTO struct {
	Amount           int64  `json:"amount" validate:"required,gt=0" example:"9900"`
	ToolSubmissionID string `json:"tool_submission_id,omitempty" example:"draft-42"`
}

type ProcessPaymentResponseDTO struct {
	Success  bool   `json:"success" example:"true"`
	OrderID  string `json:"order_id" example:"order_abc"`
	Amount   int64  `json:"amount" example:"9900"`
	Currency string `json:"currency" example:"INR"`
	KeyID    string `json:"key_id" example:"rzp_test_key"`
}

type VerifyPaymentRequestDTO struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required" example:"order_abc"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required" example:"pay_123"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type VerifyPaymentResponseDTO struct {
	Success   bool   `json:"success" example:"true"`
	PaymentID string `json:"payment_id" example:"pay_123"`
	OrderID   string `json:"order_id" example:"order_abc"`
	Status    string `json:"status" example:"completed"`
}

type PaymentResponseDTO struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	PaymentID *string   `json:"payment_id,omitempty"`
	ToolID    *string   `json:"tool_id,omitempty"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
