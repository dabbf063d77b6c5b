package dialog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricMessageBoxesShown = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "electron",
		Subsystem: "dialog",
		Name:      "message_boxes_shown_total",
		Help:      "Message boxes shown, by box type.",
	}, []string{"type"})

	metricFileRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "electron",
		Subsystem: "dialog",
		Name:      "file_requests_total",
		Help:      "File dialog requests accepted by the toolkit, by dialog type.",
	}, []string{"type"})

	metricFileCompletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "electron",
		Subsystem: "dialog",
		Name:      "file_completions_total",
		Help:      "File dialog completions emitted to the host, by outcome.",
	}, []string{"outcome"})

	metricTokensOutstanding = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "electron",
		Subsystem: "dialog",
		Name:      "file_tokens_outstanding",
		Help:      "Callback tokens currently owned by the toolkit.",
	})
)
