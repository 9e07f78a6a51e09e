// Package metrics exposes prometheus instrumentation for the source
// engine. Only counters live here; exposition is left to whatever process
// embeds the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts aggregate searches served by the source manager.
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "unison",
		Subsystem: "sources",
		Name:      "searches_total",
		Help:      "Aggregate searches executed by the source manager.",
	})

	// FanoutFaults counts individual provider calls that raised during an
	// aggregate fan-out. Faulted providers contribute nothing to the
	// aggregate; this counter is how those absorbed failures stay visible.
	FanoutFaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unison",
		Subsystem: "sources",
		Name:      "fanout_faults_total",
		Help:      "Provider calls that failed during an aggregate fan-out.",
	}, []string{"source", "operation"})

	// MatchOutcomes counts matcher decisions by kind: new, exact, fuzzy.
	MatchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unison",
		Subsystem: "matcher",
		Name:      "match_outcomes_total",
		Help:      "Release matcher decisions by outcome.",
	}, []string{"outcome"})
)
