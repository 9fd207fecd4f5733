package playmovies

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records call outcomes, retries and attempt latency. It observes
// calls through a delegate decorator, see Delegate and DelegateFactory.
type Metrics struct {
	calls    *prometheus.CounterVec
	retries  *prometheus.CounterVec
	attempts *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playmovies",
			Name:      "calls_total",
			Help:      "Completed API calls by method and outcome.",
		}, []string{"method", "outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playmovies",
			Name:      "retries_total",
			Help:      "Retried attempts by method and reason.",
		}, []string{"method", "reason"}),
		attempts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "playmovies",
			Name:      "attempt_duration_seconds",
			Help:      "Duration of single HTTP attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.calls, m.retries, m.attempts} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("failed to register playmovies metrics: %w", err)
			}
		}
	}

	return m, nil
}

// Delegate wraps next so that every hook is recorded before being forwarded.
// A nil next behaves like DefaultDelegate.
func (m *Metrics) Delegate(next Delegate) Delegate {
	if next == nil {
		next = DefaultDelegate{}
	}
	return &metricsDelegate{m: m, next: next}
}

// DelegateFactory wraps a delegate factory for use with WithDefaultDelegate.
func (m *Metrics) DelegateFactory(next func() Delegate) func() Delegate {
	return func() Delegate {
		var d Delegate
		if next != nil {
			d = next()
		}
		return m.Delegate(d)
	}
}

type metricsDelegate struct {
	m       *Metrics
	next    Delegate
	method  string
	started time.Time
}

func (d *metricsDelegate) Begin(info MethodInfo) {
	d.method = info.ID
	d.next.Begin(info)
}

func (d *metricsDelegate) PreRequest() {
	d.started = time.Now()
	d.next.PreRequest()
}

func (d *metricsDelegate) TokenError(err error) (string, bool) {
	return d.next.TokenError(err)
}

func (d *metricsDelegate) HTTPError(err error) Retry {
	d.observeAttempt()
	r := d.next.HTTPError(err)
	if r.Retry {
		d.m.retries.WithLabelValues(d.method, "transport").Inc()
	}
	return r
}

func (d *metricsDelegate) HTTPFailure(res *http.Response, apiErr *APIError) Retry {
	d.observeAttempt()
	r := d.next.HTTPFailure(res, apiErr)
	if r.Retry {
		d.m.retries.WithLabelValues(d.method, "status").Inc()
	}
	return r
}

func (d *metricsDelegate) DecodeError(body string, err error) {
	d.observeAttempt()
	d.next.DecodeError(body, err)
}

func (d *metricsDelegate) Finished(success bool) {
	d.observeAttempt()
	outcome := "error"
	if success {
		outcome = "success"
	}
	d.m.calls.WithLabelValues(d.method, outcome).Inc()
	d.next.Finished(success)
}

func (d *metricsDelegate) observeAttempt() {
	if d.started.IsZero() {
		return
	}
	d.m.attempts.WithLabelValues(d.method).Observe(time.Since(d.started).Seconds())
	d.started = time.Time{}
}
