package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/pkg/clients"
)

var creds = domain.GatewayCredentials{KeyID: "rzp_test_key", KeySecret: "rzp_test_secret"}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, clients.NewHTTPClient())
}

func TestClient_CreateOrder(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    string
		wantStatus int
		wantID     string
	}{
		{
			name: "Order created",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/orders", r.URL.Path)
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, creds.KeyID, user)
				assert.Equal(t, creds.KeySecret, pass)

				var req OrderRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, int64(9900), req.Amount)
				assert.Equal(t, "INR", req.Currency)
				assert.Equal(t, "u-1", req.Notes["user_id"])

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"id":"order_abc","entity":"order","amount":9900,"currency":"INR","receipt":"rcpt_1","status":"created","notes":{"user_id":"u-1"},"created_at":1700000000}`))
			},
			wantID: "order_abc",
		},
		{
			name: "Gateway rejects request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"The amount must be atleast INR 1.00"}}`))
			},
			wantErr:    "The amount must be atleast INR 1.00",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Gateway error without body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr:    "payment gateway returned status 502",
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "Order without id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"entity":"order"}`))
			},
			wantErr: "gateway returned an order without id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			order, err := client.CreateOrder(context.Background(), creds, OrderRequest{
				Amount:   9900,
				Currency: "INR",
				Receipt:  "rcpt_1",
				Notes:    Notes{"user_id": "u-1"},
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				var gwErr *Error
				if tt.wantStatus != 0 {
					require.True(t, errors.As(err, &gwErr))
					assert.Equal(t, tt.wantStatus, gwErr.StatusCode)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, order.ID)
			assert.Equal(t, time.Unix(1700000000, 0), order.Created())
		})
	}
}

func TestClient_ListOrders(t *testing.T) {
	from := time.Unix(1700000000, 0)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1700000000", r.URL.Query().Get("from"))
		assert.Equal(t, "100", r.URL.Query().Get("count"))
		_, _ = w.Write([]byte(`{"entity":"collection","count":2,"items":[
			{"id":"order_1","amount":100,"currency":"INR","notes":{"user_id":"u-1","purpose":"tool_submission"},"created_at":1700000100},
			{"id":"order_2","amount":200,"currency":"INR","notes":[],"created_at":1700000200}
		]}`))
	})

	orders, err := client.ListOrders(context.Background(), creds, from, 500)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "u-1", orders[0].Notes["user_id"])
	assert.Empty(t, orders[1].Notes)
}

func TestClient_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "3")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.ListOrders(context.Background(), creds, time.Now(), 10)
	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusTooManyRequests, gwErr.StatusCode)
	assert.Equal(t, 3*time.Second, gwErr.RetryAfter)
}

func TestNotes_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Notes
	}{
		{name: "object", raw: `{"a":"b","n":5}`, want: Notes{"a": "b", "n": "5"}},
		{name: "empty array", raw: `[]`, want: Notes{}},
		{name: "null", raw: `null`, want: Notes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Notes
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}
