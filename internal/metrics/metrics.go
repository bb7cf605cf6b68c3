package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysisRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postpulse_analysis_runs_total",
		Help: "Total analysis runs by kind",
	}, []string{"kind"})
	AnalysisDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postpulse_analysis_duration_seconds",
		Help:    "Analysis duration seconds by kind",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postpulse_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	SnapshotRefreshes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postpulse_snapshot_refreshes_total",
		Help: "Total snapshot refreshes",
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postpulse_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postpulse_command_errors_total",
		Help: "Total CLI command errors",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(AnalysisRuns, AnalysisDuration, HTTPRequests, SnapshotRefreshes, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveAnalysis records one analysis run of the given kind.
func ObserveAnalysis(kind string, start time.Time) {
	AnalysisRuns.WithLabelValues(kind).Inc()
	AnalysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// IncCommandRun increments the run counter for a CLI command.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError increments the error counter for a CLI command.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
