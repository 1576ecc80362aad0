package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DraftSaves counts successful wizard draft saves by wizard type.
	DraftSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casaflow_wizard_draft_saves_total",
		Help: "Number of wizard drafts saved.",
	}, []string{"wizard_type"})

	// Publishes counts successful publications by wizard type.
	Publishes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casaflow_wizard_publishes_total",
		Help: "Number of wizard drafts published.",
	}, []string{"wizard_type"})

	// PublishFailures counts failed publication attempts by failure stage.
	PublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "casaflow_wizard_publish_failures_total",
		Help: "Number of failed wizard publications.",
	}, []string{"stage"})
)

// Handler exposes the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
