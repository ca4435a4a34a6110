package config

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service collectors. Register once per registry.
type Metrics struct {
	AuthorizationDecisions *prometheus.CounterVec
	PermissionCache        *prometheus.CounterVec
	CounterAnomalies       *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AuthorizationDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grange",
			Name:      "authorization_decisions_total",
			Help:      "Authorization directive outcomes.",
		}, []string{"decision"}),
		PermissionCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grange",
			Name:      "permission_cache_total",
			Help:      "Permission set lookups by cache result.",
		}, []string{"result"}),
		CounterAnomalies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "grange",
			Name:      "counter_anomalies_total",
			Help:      "Population decrements that found the counter already at zero.",
		}, []string{"level"}),
	}
	if reg != nil {
		reg.MustRegister(m.AuthorizationDecisions, m.PermissionCache, m.CounterAnomalies)
	}
	return m
}
