package interceptor

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	directionServer = "server"
	directionClient = "client"
)

// Metrics counts errors passing through the interceptors.
type Metrics struct {
	propagated *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg when it is non-nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		propagated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rpcerror_propagated_total",
			Help: "Errors propagated at the gRPC boundary, by direction and kind.",
		}, []string{"direction", "kind"}),
	}

	if reg != nil {
		if err := reg.Register(m.propagated); err != nil {
			return nil, fmt.Errorf("register rpcerror metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) inc(direction, kind string) {
	if m == nil {
		return
	}

	m.propagated.WithLabelValues(direction, kind).Inc()
}
