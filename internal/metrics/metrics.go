// Package metrics defines the Prometheus instruments for the core.
// Everything registers on the default registry; cmd/server exposes it
// via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RepoOps counts repository operations by collection and operation
	// (list, get, create, update, delete).
	RepoOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fincaledger",
		Subsystem: "repo",
		Name:      "operations_total",
		Help:      "Repository operations by collection and operation.",
	}, []string{"collection", "operation"})

	// SeedRuns counts how many times sample data was actually written.
	SeedRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fincaledger",
		Name:      "seed_runs_total",
		Help:      "Times the sample document was written to an empty store.",
	})

	// RequestResolutions counts access request outcomes ("approved" or
	// "rejected").
	RequestResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fincaledger",
		Name:      "request_resolutions_total",
		Help:      "Access requests resolved, by outcome.",
	}, []string{"outcome"})

	// CorruptDocuments counts stored documents that failed to parse and
	// were replaced by an empty document.
	CorruptDocuments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fincaledger",
		Subsystem: "storage",
		Name:      "corrupt_documents_total",
		Help:      "Stored documents that could not be parsed.",
	})
)
