package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ja7ad/fpgabuild/pkg/estimate"
)

type metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	estimates *prometheus.CounterVec
	minutes   *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fpgabuild",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fpgabuild",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fpgabuild",
			Name:      "estimates_total",
			Help:      "Estimates served by toolchain, cpu and optimization level.",
		}, []string{"toolchain", "cpu", "opt"}),
		minutes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fpgabuild",
			Name:      "estimated_minutes",
			Help:      "Distribution of estimated stage durations.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"stage"}),
	}
	m.registry.MustRegister(
		m.requests, m.latency, m.estimates, m.minutes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observe(in estimate.Input, r estimate.Result) {
	m.estimates.WithLabelValues(in.Toolchain.String(), in.CPU.String(), in.Opt.String()).Inc()
	m.minutes.WithLabelValues("synthesis").Observe(float64(r.Synthesis))
	m.minutes.WithLabelValues("implementation").Observe(float64(r.Implementation))
	m.minutes.WithLabelValues("bitstream").Observe(float64(r.Bitstream))
}

// instrument records request counts and latency per matched route.
func (m *metrics) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
