package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DirectoryRequestsTotal counts calls against the remote user
// directory, labelled by operation (list/create/update/disable) and
// outcome (ok/unauthorized/rejected/fetch_error/decode_error).
var DirectoryRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "directory_requests_total",
		Help: "Total requests issued to the user directory service",
	},
	[]string{"operation", "outcome"},
)

// DirectoryRequestDuration observes remote call latency per operation.
var DirectoryRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "directory_request_duration_seconds",
		Help:    "Latency of user directory requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// PrefReconcileTotal counts preference reconciliation passes,
// labelled by whether the freshly read value differed and was applied.
var PrefReconcileTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pref_reconcile_total",
		Help: "Sidebar preference reconciliation passes",
	},
	[]string{"applied"},
)
