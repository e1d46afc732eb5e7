package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_advanced_searches_total",
			Help: "Total number of advanced searches by outcome",
		},
		[]string{"outcome"},
	)

	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pantrychef_advanced_search_duration_seconds",
			Help:    "Duration of advanced searches in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	searchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pantrychef_advanced_search_candidates",
			Help:    "Number of candidate recipes discovered per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	detailFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_detail_fetch_failures_total",
			Help: "Candidates dropped because their detail fetch failed or found nothing",
		},
		[]string{"code"},
	)

	filterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantrychef_filter_rejections_total",
			Help: "Recipes excluded by each search constraint",
		},
		[]string{"constraint"},
	)
)
