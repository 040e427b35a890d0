package ledger

import "github.com/prometheus/client_golang/prometheus"

var (
	persistReceiptDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "token_ledger",
		Subsystem: "ledger",
		Name:      "persist_receipt_duration_second",
		Help:      "The total latency of receipt persist",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
	})

	latestSeqMetric = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "token_ledger",
		Subsystem: "ledger",
		Name:      "latest_seq",
		Help:      "the latest persisted call sequence",
	})

	flushDirtyStateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "token_ledger",
		Subsystem: "ledger",
		Name:      "flush_dirty_state_duration",
		Help:      "The total latency of flush dirty state into db",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
	})

	flushedStateKeysPerCommit = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "token_ledger",
		Subsystem: "ledger",
		Name:      "flushed_state_keys_per_commit",
		Help:      "The total number of state keys flushed by the last commit",
	})

	accountReadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "token_ledger",
		Subsystem: "ledger",
		Name:      "account_read_duration",
		Help:      "The total latency of read an account from db",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 10),
	})

	stateReadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "token_ledger",
		Subsystem: "ledger",
		Name:      "state_read_duration",
		Help:      "The total latency of read a state from db",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 10),
	})

	getReceiptCounter = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "token_ledger",
			Subsystem: "ledger",
			Name:      "get_receipt_counter",
			Help:      "the total times of query GetReceipt",
		},
	)
)

func init() {
	prometheus.MustRegister(persistReceiptDuration)
	prometheus.MustRegister(latestSeqMetric)
	prometheus.MustRegister(flushDirtyStateDuration)
	prometheus.MustRegister(flushedStateKeysPerCommit)
	prometheus.MustRegister(accountReadDuration)
	prometheus.MustRegister(stateReadDuration)
	prometheus.MustRegister(getReceiptCounter)
}
