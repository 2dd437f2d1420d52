package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
	BetsPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_placed_total",
			Help: "Total bets placed, by game",
		},
		[]string{"game"},
	)
	BetsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_resolved_total",
			Help: "Total bets resolved, by game and outcome",
		},
		[]string{"game", "result"},
	)
	AchievementsGranted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "achievements_granted_total",
			Help: "Total achievements granted by the evaluator",
		},
	)
)

func init() {
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
	prometheus.MustRegister(BetsPlaced)
	prometheus.MustRegister(BetsResolved)
	prometheus.MustRegister(AchievementsGranted)
}
