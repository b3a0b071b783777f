// Package metrics exposes prometheus counters for the generation and
// delivery pipeline, served on the ops API at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransactionsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atm_transactions_generated_total",
		Help: "Total number of transaction records synthesized.",
	})

	TransactionsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atm_transactions_sent_total",
		Help: "Total number of transaction records accepted by the ingestion endpoint.",
	})

	SendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "atm_transaction_send_failures_total",
		Help: "Total number of transaction records dropped after a failed send.",
	})
)
