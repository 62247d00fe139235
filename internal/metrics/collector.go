package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/livp123/logsift/internal/utils/logger"
)

var (
	// Ingest metrics
	LinesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logsift_lines_total",
			Help: "Total log lines read from the input",
		},
	)
	ParseFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logsift_parse_failures_total",
			Help: "Lines dropped because they failed the line grammar",
		},
	)
	FilteredRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logsift_filtered_records_total",
			Help: "Valid records dropped by the optional filter expression",
		},
	)
	RecordsIndexedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logsift_records_indexed_total",
			Help: "Records folded into the log index",
		},
	)

	// Aggregation metrics
	AddressesSelectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logsift_addresses_selected_total",
			Help: "Addresses that passed the address range filter",
		},
	)
	MatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logsift_matches_total",
			Help: "Timestamps counted inside the configured time window",
		},
	)
)

// Serve exposes /metrics on addr for the duration of the run.
// The listener dies with the process; a batch run has no graceful teardown to do.
func Serve(addr string) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get(nil).Warnf("⚠️ Metrics server failed on %s: %v", addr, err)
		}
	}()
}
