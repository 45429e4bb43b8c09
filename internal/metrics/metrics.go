package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SourceFetches   *prometheus.CounterVec
	RankingRequests *prometheus.CounterVec
	SearchRequests  prometheus.Counter
	RequestSeconds  *prometheus.HistogramVec
	CatalogSize     prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SourceFetches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_source_fetches_total",
			Help: "Total number of category source fetches by outcome.",
		}, []string{"category", "status"}),
		RankingRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ranking_requests_total",
			Help: "Total number of ranked listing requests by sort criterion.",
		}, []string{"criterion"}),
		SearchRequests: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of free-text search requests.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of full catalog loads.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		CatalogSize: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "catalog_places",
			Help: "Number of places in the current catalog snapshot.",
		}),
	}
}
