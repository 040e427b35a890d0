package executor

import "github.com/prometheus/client_golang/prometheus"

var (
	executeCallDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "token_ledger",
		Subsystem: "executor",
		Name:      "execute_call_duration_second",
		Help:      "The total latency of one state-changing call",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
	})
	queryCallDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "token_ledger",
		Subsystem: "executor",
		Name:      "query_call_duration_second",
		Help:      "The total latency of one read-only call",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
	})
	callCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "token_ledger",
		Subsystem: "executor",
		Name:      "call_counter",
		Help:      "The total number of executed calls",
	})
	failedCallCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "token_ledger",
		Subsystem: "executor",
		Name:      "failed_call_counter",
		Help:      "The total number of calls that failed and were rolled back",
	})
	queryCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "token_ledger",
		Subsystem: "executor",
		Name:      "query_counter",
		Help:      "The total number of read-only calls",
	})
)

func init() {
	prometheus.MustRegister(executeCallDuration)
	prometheus.MustRegister(queryCallDuration)
	prometheus.MustRegister(callCounter)
	prometheus.MustRegister(failedCallCounter)
	prometheus.MustRegister(queryCounter)
}
