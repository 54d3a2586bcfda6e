package slidingwindow

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// windowMetrics holds the Prometheus collectors for one window.
type windowMetrics struct {
	pushes      prometheus.Counter
	rewinds     prometheus.Counter
	utilization prometheus.Gauge
}

func newWindowMetrics(reg prometheus.Registerer, name string) (*windowMetrics, error) {
	labels := prometheus.Labels{"window": name}
	m := &windowMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slidingwindow",
			Name:        "pushes_total",
			ConstLabels: labels,
			Help:        "Total number of values pushed into the window",
		}),
		rewinds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slidingwindow",
			Name:        "rewinds_total",
			ConstLabels: labels,
			Help:        "Total number of buffer compactions",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "slidingwindow",
			Name:        "buffer_utilization",
			ConstLabels: labels,
			Help:        "Fraction of the backing buffer written since the last rewind (0.0 to 1.0)",
		}),
	}

	for _, c := range []prometheus.Collector{m.pushes, m.rewinds, m.utilization} {
		if err := reg.Register(c); err != nil {
			return nil, &WindowError{Op: "register metrics", Err: fmt.Errorf("window %q: %w", name, err)}
		}
	}
	return m, nil
}

// instrumentedStorage decorates a Storage with metrics and rewind logging.
// Reads pass straight through via the embedded Storage.
type instrumentedStorage[T comparable] struct {
	Storage[T]
	name    string
	metrics *windowMetrics
	logger  logrus.FieldLogger
	rewinds uint64
}

func newInstrumentedStorage[T comparable](storage Storage[T], cfg options) (*instrumentedStorage[T], error) {
	s := &instrumentedStorage[T]{
		Storage: storage,
		name:    cfg.name,
		logger:  cfg.logger,
		rewinds: storage.Stats().Rewinds,
	}
	if cfg.registerer != nil {
		m, err := newWindowMetrics(cfg.registerer, cfg.name)
		if err != nil {
			return nil, err
		}
		s.metrics = m
	}
	return s, nil
}

func (s *instrumentedStorage[T]) Push(value T) {
	s.Storage.Push(value)

	rewound := false
	if r := s.Storage.Stats().Rewinds; r != s.rewinds {
		s.rewinds = r
		rewound = true
	}

	if s.metrics != nil {
		s.metrics.pushes.Inc()
		if rewound {
			s.metrics.rewinds.Inc()
		}
		s.metrics.utilization.Set(float64(s.Storage.Tail()) / float64(s.Storage.Capacity()))
	}

	if rewound && s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"window":   s.name,
			"size":     s.Storage.Size(),
			"capacity": s.Storage.Capacity(),
			"rewinds":  s.rewinds,
		}).Debug("window buffer rewound")
	}
}
