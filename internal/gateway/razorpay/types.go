package razorpay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Notes    Notes  `json:"notes,omitempty"`
}

type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	AmountDue int64  `json:"amount_due"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	Attempts  int    `json:"attempts"`
	Notes     Notes  `json:"notes"`
	CreatedAt int64  `json:"created_at"`
}

func (o Order) Created() time.Time {
	return time.Unix(o.CreatedAt, 0)
}

type orderCollection struct {
	Entity string  `json:"entity"`
	Count  int     `json:"count"`
	Items  []Order `json:"items"`
}

// Notes is the gateway's free-form key/value bag. An empty bag is sent back as [].
type Notes map[string]string

func (n *Notes) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("[]")) {
		*n = Notes{}
		return nil
	}
	m := map[string]any{}
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return err
	}
	out := make(Notes, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprint(v)
		}
	}
	*n = out
	return nil
}

type errorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Error is a non-2xx gateway response. Error() is the gateway's description.
type Error struct {
	StatusCode  int
	Code        string
	Description string
	RetryAfter  time.Duration
}

func (e *Error) Error() string {
	return e.Description
}
