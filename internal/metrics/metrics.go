package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayCalls counts contract calls by method and outcome (ok, reverted, error)
	GatewayCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cryptoballot_gateway_calls_total",
			Help: "Total number of voting contract calls",
		},
		[]string{"method", "outcome"},
	)

	// GatewayCallDuration tracks contract call latency including retries and mining
	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cryptoballot_gateway_call_duration_seconds",
			Help:    "Voting contract call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15, 30, 60, 180},
		},
		[]string{"method"},
	)

	// BallotsProbed counts ids probed during discovery
	BallotsProbed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cryptoballot_ballots_probed_total",
			Help: "Total number of ballot ids probed during discovery",
		},
	)

	// BallotsDiscovered reports the size of the last completed discovery pass
	BallotsDiscovered = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cryptoballot_ballots_discovered",
			Help: "Number of ballots found by the last discovery pass",
		},
		[]string{"state"},
	)

	// BallotWrites counts create and vote submissions by operation and result
	BallotWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cryptoballot_ballot_writes_total",
			Help: "Total number of ballot write operations",
		},
		[]string{"operation", "result"},
	)

	// FriendTransitions counts friend request state changes
	FriendTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cryptoballot_friend_transitions_total",
			Help: "Total number of friend request transitions",
		},
		[]string{"transition"},
	)

	// AuthAttempts counts authentication operations by outcome
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cryptoballot_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"operation", "result"},
	)

	// HTTPRequestDuration tracks API latency by route pattern and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cryptoballot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Result returns the label value used for the result dimension
func Result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
