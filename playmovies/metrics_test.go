package playmovies

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Register(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err)

	m, err := NewMetrics(nil)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestMetrics_Delegate(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	var hits atomic.Int32
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/accounts/A1/orders/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}, nil, WithDefaultDelegate(m.DelegateFactory(func() Delegate {
		return &recorder{statusRetries: 1}
	})))

	_, err = s.Accounts().OrdersGet("A1", "O1").Do(context.Background())
	require.NoError(t, err)
	_, err = s.Accounts().OrdersGet("A1", "missing").Do(context.Background())
	require.Error(t, err)

	const method = "playmoviespartner.accounts.orders.get"
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(method, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues(method, "error")))
	// the recorder also grants one retry to the 404
	assert.Equal(t, 2.0, testutil.ToFloat64(m.retries.WithLabelValues(method, "status")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.retries.WithLabelValues(method, "transport")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.attempts))
}

func TestMetrics_DelegateForwards(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)

	rec := &recorder{replacement: "tok", hasReplacement: true}
	d := m.Delegate(rec)

	d.Begin(MethodInfo{ID: "m"})
	token, ok := d.TokenError(assert.AnError)
	d.PreRequest()
	d.DecodeError("body", assert.AnError)
	d.Finished(false)

	assert.Equal(t, "tok", token)
	assert.True(t, ok)
	assert.Equal(t, []string{"begin", "token_error", "pre", "decode_error", "finished"}, rec.events)
	assert.Equal(t, "body", rec.decodeBody)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("m", "error")))

	assert.NotNil(t, m.Delegate(nil))
}
