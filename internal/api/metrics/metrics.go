// Package metrics defines and registers all custom Prometheus metrics for
// the catalog system. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are registered with the default Prometheus registry at
// package init via promauto; the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "inactive", "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountLockoutsTotal counts accounts locked after exhausting their
// consecutive failed login attempts.
var AccountLockoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_lockouts_total",
		Help:      "Total number of accounts locked out after repeated failed logins.",
	},
)

// AccountsRegisteredTotal counts successful registrations.
var AccountsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// ResourcesWrittenTotal counts catalog mutations.
// Labels:
//   - operation: "create", "edit", "delete"
//   - type: resource type
var ResourcesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_written_total",
		Help:      "Total number of catalog mutations, by operation and resource type.",
	},
	[]string{"operation", "type"},
)

// ValidationFailuresTotal counts operations rejected by field validation.
// Label:
//   - entity: "resource" or "account"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of operations rejected by field validation, by entity.",
	},
	[]string{"entity"},
)
