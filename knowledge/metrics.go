package knowledge

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evidenceTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweeper_evidence_total",
		Help: "Number of revealed cells integrated by agents",
	})

	passesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweeper_fixpoint_passes_total",
		Help: "Number of inference passes run by agents",
	})

	derivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweeper_sentences_derived_total",
		Help: "Number of sentences derived through subset inference",
	})

	deducedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sweeper_cells_deduced_total",
		Help: "Number of cells found to be mines or safe",
	}, []string{"kind"})

	passesPerEvidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sweeper_fixpoint_passes",
		Help:    "Number of inference passes needed to integrate one revealed cell",
		Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16, 32},
	})
)
