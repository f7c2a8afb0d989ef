package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// SwapRequestsCreated counts swap requests accepted by the engine.
	SwapRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_swap_requests_created_total",
		Help: "Total number of swap requests created",
	})

	// SwapTransitions counts applied status transitions.
	SwapTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_transitions_total",
		Help: "Total number of swap status transitions by source and target status",
	}, []string{"from", "to"})

	// RatingsSubmitted counts stored ratings.
	RatingsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_ratings_submitted_total",
		Help: "Total number of ratings submitted",
	})

	// AdminBroadcasts counts admin broadcast messages.
	AdminBroadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_admin_broadcasts_total",
		Help: "Total number of admin broadcast messages",
	})
)
