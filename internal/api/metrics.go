package api

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeDecoded    = "decoded"
	outcomeInvalid    = "invalid"
	outcomeBadRequest = "bad_request"
)

type metrics struct {
	decodes *prometheus.CounterVec
}

func newMetrics(registry prometheus.Registerer) *metrics {
	m := &metrics{
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gatewayctl",
			Name:      "revert_decodes_total",
			Help:      "Revert data decode requests by outcome and error name.",
		}, []string{"outcome", "error"}),
	}
	registry.MustRegister(m.decodes)
	return m
}

func (m *metrics) observeDecode(outcome string, name string) {
	m.decodes.WithLabelValues(outcome, name).Inc()
}
