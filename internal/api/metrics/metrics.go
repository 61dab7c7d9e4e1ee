// Package metrics defines and registers the custom Prometheus metrics for
// the course backend. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backend"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: the role chosen at registration ("user", "manager", "admin")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by role.",
	},
	[]string{"role"},
)

// GateDenialsTotal counts requests stopped by the access control gate.
// Label:
//   - reason: "unauthenticated" (redirected to login) or "insufficient_role" (403)
var GateDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_denials_total",
		Help:      "Total number of requests denied by the access control gate.",
	},
	[]string{"reason"},
)

// UploadsTotal counts file upload attempts.
// Label:
//   - result: "success", "rejected" (type/size), or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of file upload attempts, by result.",
	},
	[]string{"result"},
)

// ArticlesCreatedTotal counts articles created through the CMS.
var ArticlesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_created_total",
		Help:      "Total number of articles created.",
	},
)
