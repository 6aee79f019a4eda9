package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests served by the storefront HTTP surface.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "HTTP requests handled, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// PaymentVerifications counts verification attempts by provider and
	// terminal state.
	PaymentVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_payment_verifications_total",
		Help: "Payment verification attempts, by provider and outcome.",
	}, []string{"provider", "outcome"})

	// OrderAggregations counts order history loads by outcome.
	OrderAggregations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_aggregations_total",
		Help: "Order aggregation runs, by outcome.",
	}, []string{"outcome"})

	// CartMutations counts quantity updates and removals sent upstream.
	CartMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
		Help: "Cart quantity mutations forwarded to the backend, by kind.",
	}, []string{"kind"})
)
