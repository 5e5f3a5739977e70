package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aitools"

var (
	PaymentOrders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_orders_total",
		Help:      "Payment order requests by result.",
	}, []string{"result"})

	PaymentVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_verifications_total",
		Help:      "Payment verification attempts by result.",
	}, []string{"result"})

	ToolSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tool_submissions_total",
		Help:      "Accepted tool submissions by listing type.",
	}, []string{"listing_type"})

	SecondaryWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "secondary_write_failures_total",
		Help:      "Best-effort writes that failed after the primary write committed.",
	}, []string{"operation"})

	ReconciledOrders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconciled_orders_total",
		Help:      "Gateway orders restored into the payments table.",
	})
)

const (
	ResultOK              = "ok"
	ResultConflict        = "conflict"
	ResultGatewayError    = "gateway_error"
	ResultNotConfigured   = "not_configured"
	ResultPersistFailed   = "persist_failed"
	ResultIdempotent      = "idempotent"
	ResultInvalid         = "invalid_signature"
	ResultError           = "error"
	OpLinkCategories      = "tool_categories"
	OpLinkTags            = "tool_tags"
	OpSubmissionRecord    = "submission"
	OpPublishEvent        = "publish_event"
	OpPersistPendingOrder = "pending_payment"
)
