package domain

import "time"

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

const (
	ToolStatusPending  = "pending"
	ToolStatusApproved = "approved"
	ToolStatusRejected = "rejected"

	ListingTypeFree = "free"
	ListingTypePaid = "paid"
)

type User struct {
	ID           string    `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	ID          string    `db:"id"`
	Role        string    `db:"role"`
	DisplayName *string   `db:"display_name"`
	AvatarURL   *string   `db:"avatar_url"`
	CreatedAt   time.Time `db:"created_at"`
}

type Payment struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	ToolID            *string        `db:"tool_id"`
	ToolSubmissionID  *string        `db:"tool_submission_id"`
	Amount            int64          `db:"amount"`
	Currency          string         `db:"currency"`
	Status            string         `db:"status"`
	RazorpayOrderID   string         `db:"razorpay_order_id"`
	RazorpayPaymentID *string        `db:"razorpay_payment_id"`
	ProviderPaymentID *string        `db:"provider_payment_id"`
	Metadata          map[string]any `db:"metadata"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type Tool struct {
	ID               string    `db:"id"`
	Slug             string    `db:"slug"`
	Name             string    `db:"name"`
	Description      string    `db:"description"`
	ShortDescription *string   `db:"short_description"`
	WebsiteURL       string    `db:"website_url"`
	LogoURL          *string   `db:"logo_url"`
	PricingType      string    `db:"pricing_type"`
	Status           string    `db:"status"`
	ListingType      string    `db:"listing_type"`
	PaymentID        *string   `db:"payment_id"`
	SubmittedBy      string    `db:"submitted_by"`
	ViewCount        int64     `db:"view_count"`
	RatingAvg        float64   `db:"rating_avg"`
	RatingCount      int       `db:"rating_count"`
	CreatedAt        time.Time `db:"created_at"`
}

type Submission struct {
	ID        string    `db:"id"`
	ToolID    string    `db:"tool_id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	PaymentID *string   `db:"payment_id"`
	CreatedAt time.Time `db:"created_at"`
}

// GatewayCredentials is the key pair used to talk to the payment gateway.
// Secret never leaves the server.
type GatewayCredentials struct {
	KeyID     string `json:"key_id"`
	KeySecret string `json:"key_secret"`
}
