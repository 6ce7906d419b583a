// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/holectl/holectl/src/internal/errors"
)

const resultOK = "ok"

var (
	listMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holectl_list_mutations_total",
			Help: "List add/remove operations by list, operation and result code",
		},
		[]string{"list", "operation", "result"},
	)
	reactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holectl_reactions_total",
			Help: "Resolver reactions (gravity reload, regex recompile) by kind and result code",
		},
		[]string{"kind", "result"},
	)
	reactionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "holectl_reaction_duration_seconds",
			Help:    "Duration of resolver reactions in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		},
		[]string{"kind"},
	)
	generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holectl_dnsmasq_generations_total",
			Help: "dnsmasq configuration generations by result code",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(listMutations, reactions, reactionLatency, generations)
}

func result(err error) string {
	if err == nil {
		return resultOK
	}
	return string(errors.CodeOf(err))
}

// ObserveListMutation counts one add or remove on a list.
func ObserveListMutation(list, operation string, err error) {
	listMutations.WithLabelValues(list, operation, result(err)).Inc()
}

// ObserveReaction counts one resolver reaction started at start.
func ObserveReaction(kind string, start time.Time, err error) {
	reactionLatency.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	reactions.WithLabelValues(kind, result(err)).Inc()
}

// ObserveGeneration counts one dnsmasq configuration generation.
func ObserveGeneration(err error) {
	generations.WithLabelValues(result(err)).Inc()
}
