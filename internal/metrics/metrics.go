package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorstack_upstream_queries_total",
		Help: "Notion database queries, labelled by dataset and outcome (ok or an error code).",
	}, []string{"dataset", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "colorstack_upstream_query_duration_seconds",
		Help:    "Time to read a whole Notion database, all pages included.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15},
	}, []string{"dataset"})

	RecordsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorstack_records_dropped_total",
		Help: "Mapped records dropped for missing required fields.",
	}, []string{"dataset"})

	MockResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorstack_mock_responses_total",
		Help: "Responses served from the offline dataset because credentials are missing.",
	}, []string{"dataset"})

	Responses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorstack_http_responses_total",
		Help: "HTTP responses, labelled by route and status code.",
	}, []string{"route", "status"})
)
