// Package metrics defines all custom Prometheus metrics for the Prootly
// admin API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// at package init; HTTP-level request metrics are added separately by the
// echoprometheus middleware in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prootly"

// EntitiesCreatedTotal counts rows created through the CRUD services.
// Label:
//   - entity: "employee", "client", "project", "comment" or "user"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entity rows created, by entity type.",
	},
	[]string{"entity"},
)

// EntitiesDeletedTotal counts rows removed through the CRUD services.
// Label:
//   - entity: same values as EntitiesCreatedTotal
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of entity rows deleted, by entity type.",
	},
	[]string{"entity"},
)

// SearchQueriesTotal counts directory search requests.
// Label:
//   - entity: "employee" or "client"
var SearchQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_queries_total",
		Help:      "Total number of substring search queries, by entity type.",
	},
	[]string{"entity"},
)

// StoreRows tracks the current number of rows held per in-memory collection.
// Label:
//   - entity: same values as EntitiesCreatedTotal
var StoreRows = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_rows",
		Help:      "Current number of rows in each in-memory entity collection.",
	},
	[]string{"entity"},
)
