package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/dto"
	"github.com/GlebRadaev/aitools/internal/service/adminservice"
	"github.com/GlebRadaev/aitools/internal/service/settingsservice"
	"github.com/GlebRadaev/aitools/pkg/utils"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withPaymentID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdatePaymentStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Unknown status",
			body:          `{"status":"completed"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "status must be one of: refunded failed",
		},
		{
			name: "Illegal transition",
			body: `{"status":"refunded"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), "p-1", "refunded").
					Return(nil, fmt.Errorf("%w: pending -> refunded", adminservice.ErrInvalidTransition))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid payment status transition: pending -> refunded",
		},
		{
			name: "Payment not found",
			body: `{"status":"failed"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), "p-1", "failed").Return(nil, adminservice.ErrPaymentNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "payment not found",
		},
		{
			name: "Unexpected failure",
			body: `{"status":"failed"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), "p-1", "failed").Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Refunded",
			body: `{"status":"refunded"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentStatus(gomock.Any(), "p-1", "refunded").
					Return(&domain.Payment{ID: "p-1", RazorpayOrderID: "order_abc", Status: domain.PaymentStatusRefunded}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withPaymentID(httptest.NewRequest(http.MethodPatch, "/api/admin/payments/p-1/status", strings.NewReader(tt.body)), "p-1")
			rr := httptest.NewRecorder()

			handler.UpdatePaymentStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.PaymentResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "refunded", resp.Status)
			assert.Equal(t, "order_abc", resp.OrderID)
		})
	}
}

func TestUpdatePaymentSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:         "Missing secret",
			body:         `{"key_id":"rzp_key"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Stored",
			body: `{"key_id":"rzp_key","key_secret":"secret"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentSettings(gomock.Any(), "rzp_key", "secret").Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Storage failure",
			body: `{"key_id":"rzp_key","key_secret":"secret"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePaymentSettings(gomock.Any(), "rzp_key", "secret").Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPut, "/api/admin/settings/payment", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.UpdatePaymentSettings(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestReconcileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expected     int
	}{
		{
			name: "Rows restored",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any()).Return(3, nil)
			},
			expectedCode: http.StatusOK,
			expected:     3,
		},
		{
			name: "Gateway not configured",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any()).Return(0, settingsservice.ErrGatewayNotConfigured)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name: "Gateway failure",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any()).Return(0, errors.New("list gateway orders: timeout"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/payments/reconcile", nil)
			rr := httptest.NewRecorder()

			handler.Reconcile(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.ReconcileResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expected, resp.Restored)
			}
		})
	}
}
