package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name        string   `json:"name" validate:"required"`
	WebsiteURL  string   `json:"website_url" validate:"required,url"`
	Amount      int64    `json:"amount,omitempty" validate:"gt=0"`
	CategoryIDs []string `json:"category_ids" validate:"required"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{
			name:  "Valid",
			input: sample{Name: "Foo", WebsiteURL: "https://x", Amount: 1, CategoryIDs: []string{"c-1"}},
		},
		{
			name:    "Missing name",
			input:   sample{WebsiteURL: "https://x", Amount: 1, CategoryIDs: []string{"c-1"}},
			wantErr: "name is required",
		},
		{
			name:    "Bad url and amount",
			input:   sample{Name: "Foo", WebsiteURL: "nope", Amount: 0, CategoryIDs: []string{"c-1"}},
			wantErr: "website_url must be a valid URL, amount must be greater than 0",
		},
		{
			name:    "Acronym field uses its json name",
			input:   sample{Name: "Foo", WebsiteURL: "https://x", Amount: 1},
			wantErr: "category_ids is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
