package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "errors_playground"
	metricsSubsystem = "http"

	// unmatchedRoute labels requests no route matched, keeping the label
	// set bounded no matter what paths clients probe.
	unmatchedRoute = "unmatched"
)

var (
	// httpReqs counts requests by method, route template and status.
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	// httpLat records request duration by route. The recommendations route
	// includes the presentation delay, hence the buckets up to 5s.
	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 1.5, 2, 3, 5},
		},
		[]string{"method", "route"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_inflight",
			Help:      "HTTP requests currently being served.",
		},
	)

	// httpRespSize observes body sizes. Catalog payloads are a few KiB,
	// generated files somewhat more.
	httpRespSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "response_size_bytes",
			Help:      "HTTP response size in bytes.",
			Buckets:   prometheus.ExponentialBuckets(256, 2, 10), // 256B..128KiB
		},
		[]string{"method", "route"},
	)

	// httpDownloads counts responses served as attachments (payload and
	// generated code downloads).
	httpDownloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "downloads_total",
			Help:      "Responses served as attachments, by route.",
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, httpRespSize, httpDownloads)
}

// Metrics instruments requests with Prometheus collectors labeled by route
// template. Expose them with promhttp on /metrics.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		httpReqs.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpLat.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size >= 0 {
			httpRespSize.WithLabelValues(method, route).Observe(float64(size))
		}
		if strings.HasPrefix(c.Writer.Header().Get("Content-Disposition"), "attachment") {
			httpDownloads.WithLabelValues(route).Inc()
		}
	}
}
