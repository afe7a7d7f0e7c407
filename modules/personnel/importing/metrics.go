package importing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rowsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "personnel",
		Subsystem: "import",
		Name:      "rows_parsed_total",
		Help:      "Total number of candidate rows produced from uploaded files.",
	})

	duplicatesFlagged = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "personnel",
		Subsystem: "import",
		Name:      "duplicates_flagged_total",
		Help:      "Rows flagged as duplicates, by source (batch or datastore).",
	}, []string{"source"})

	duplicateChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "personnel",
		Subsystem: "import",
		Name:      "duplicate_checks_total",
		Help:      "Datastore duplicate-check round trips, by result.",
	}, []string{"result"})

	rowCommits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "personnel",
		Subsystem: "import",
		Name:      "row_commits_total",
		Help:      "Per-row create attempts during commit, by result.",
	}, []string{"result"})
)
