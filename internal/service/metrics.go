package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	gamesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "imposter_games_created_total",
			Help: "Total games created",
		},
	)
	reveals = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "imposter_reveals_total",
			Help: "Total player reveals served",
		},
	)
	solutions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "imposter_solutions_total",
			Help: "Total solutions disclosed",
		},
	)
)

func init() {
	prometheus.MustRegister(gamesCreated)
	prometheus.MustRegister(reveals)
	prometheus.MustRegister(solutions)
}
