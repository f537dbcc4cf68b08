package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the collectors exported on /metrics
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	LeadsCreated  *prometheus.CounterVec
	ReferralClick *prometheus.CounterVec
	SeoPages      *prometheus.CounterVec
	WebhookEvents *prometheus.CounterVec
	Notifications *prometheus.CounterVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxpro",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "taxpro",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LeadsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxpro",
			Name:      "leads_created_total",
			Help:      "Leads captured by attribution method.",
		}, []string{"method"}),
		ReferralClick: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxpro",
			Name:      "referral_clicks_total",
			Help:      "Referral link clicks by outcome.",
		}, []string{"outcome"}),
		SeoPages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxpro",
			Name:      "seo_pages_generated_total",
			Help:      "Landing page generation results.",
		}, []string{"result"}),
		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxpro",
			Name:      "payment_webhook_events_total",
			Help:      "Payment webhook events by type and result.",
		}, []string{"type", "result"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxpro",
			Name:      "notifications_total",
			Help:      "Outbound notifications by channel and result.",
		}, []string{"channel", "result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.LeadsCreated,
		m.ReferralClick,
		m.SeoPages,
		m.WebhookEvents,
		m.Notifications,
	)
	return m
}

// Result maps an error to a "ok"/"error" label
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
