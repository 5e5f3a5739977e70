package dto

import "time"

type SubmitToolRequestDTO struct {
	Name             string   `json:"name" validate:"required,max=200"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"short_description,omitempty" validate:"max=300"`
	WebsiteURL       string   `json:"website_url" validate:"required,url"`
	LogoURL          string   `json:"logo_url,omitempty" validate:"omitempty,url"`
	PricingType      string   `json:"pricing_type" validate:"required"`
	ListingType      string   `json:"listing_type,omitempty" validate:"omitempty,oneof=free paid"`
	PaymentID        string   `json:"payment_id,omitempty"`
	PaymentStatus    string   `json:"payment_status,omitempty"`
	CategoryIDs      []string `json:"category_ids,omitempty"`
	TagIDs           []string `json:"tag_ids,omitempty"`
}

type ToolDTO struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ShortDescription *string   `json:"short_description,omitempty"`
	WebsiteURL       string    `json:"website_url"`
	LogoURL          *string   `json:"logo_url,omitempty"`
	PricingType      string    `json:"pricing_type"`
	Status           string    `json:"status"`
	ListingType      string    `json:"listing_type"`
	PaymentID        *string   `json:"payment_id,omitempty"`
	SubmittedBy      string    `json:"submitted_by"`
	CreatedAt        time.Time `json:"created_at"`
}

type SubmitToolResponseDTO struct {
	Tool ToolDTO `json:"tool"`
}
