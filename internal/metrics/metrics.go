// Package metrics provides Prometheus metrics for rfm.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Directory listing metrics
	listDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rfm_list_duration_seconds",
			Help:    "Time spent reading a directory",
			Buckets: prometheus.DefBuckets,
		},
	)

	listErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfm_list_errors_total",
			Help: "Directory reads that failed, by error kind",
		},
		[]string{"kind"},
	)

	navigationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rfm_navigations_total",
			Help: "Completed directory navigations",
		},
	)

	// Transfer metrics
	transferItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfm_transfer_items_total",
			Help: "Items processed by transfer operations",
		},
		[]string{"op", "status"},
	)

	transferDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rfm_transfer_duration_seconds",
			Help:    "Wall time of a transfer batch",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordList records one directory read. kind is empty on success.
func RecordList(duration time.Duration, kind string) {
	listDuration.Observe(duration.Seconds())
	if kind != "" {
		listErrorsTotal.WithLabelValues(kind).Inc()
	}
}

// RecordNavigation counts a navigation that produced a view.
func RecordNavigation() {
	navigationsTotal.Inc()
}

// RecordTransfer records the per-item results of one transfer batch.
func RecordTransfer(op string, succeeded, failed int, duration time.Duration) {
	transferItemsTotal.WithLabelValues(op, "success").Add(float64(succeeded))
	transferItemsTotal.WithLabelValues(op, "failure").Add(float64(failed))
	transferDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
