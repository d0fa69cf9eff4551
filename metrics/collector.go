package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/andyle182810/liquidplanner/httpclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	namespace = "liquidplanner"

	codeTransportError = "transport_error"
)

var ErrRegister = errors.New("metrics: failed to register collector")

// Collector records executor events as Prometheus metrics.
type Collector struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	throttled    *prometheus.CounterVec
	throttleWait prometheus.Histogram
}

var _ httpclient.Observer = (*Collector)(nil)

func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "HTTP requests sent to LiquidPlanner, one per attempt.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of a single HTTP attempt.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		throttled: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "throttled_total",
			Help:      "Responses rejected by the API rate limit.",
		}, []string{"method"}),
		throttleWait: prometheus.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "throttle_wait_seconds",
			Help:      "Time slept before resending a throttled request.",
			Buckets:   []float64{1, 2, 5, 10, 15, 30, 60, 120},
		}),
	}

	for _, collector := range []prometheus.Collector{c.requests, c.duration, c.throttled, c.throttleWait} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegister, err)
		}
	}

	return c, nil
}

func (c *Collector) OnRequest(_ context.Context, event httpclient.RequestEvent) {
	code := codeTransportError
	if event.StatusCode > 0 {
		code = strconv.Itoa(event.StatusCode)
	}

	c.requests.WithLabelValues(event.Method, code).Inc()
	c.duration.WithLabelValues(event.Method).Observe(event.Duration.Seconds())
}

func (c *Collector) OnThrottled(_ context.Context, event httpclient.ThrottleEvent) {
	c.throttled.WithLabelValues(event.Method).Inc()
	c.throttleWait.Observe(event.Wait.Seconds())
}

// WriteText writes every metric family of g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", family.GetName(), err)
		}
	}

	return nil
}
