package reactant

import (
	"io"

	"github.com/antlr-labs/reactant/internal"
	"github.com/prometheus/client_golang/prometheus"
)

// EnableLogging turns on structured logging (flush start/end at debug level,
// aborted flushes at error level) for the process-wide runtime, writing to
// w. Off (a no-op logger) by default.
func EnableLogging(w io.Writer) {
	internal.GetRuntime().EnableLogging(w)
}

// EnableMetrics registers scheduler gauges/counters against reg for the
// process-wide runtime. Passing nil disables metrics again. Off by
// default.
func EnableMetrics(reg prometheus.Registerer) {
	internal.GetRuntime().EnableMetrics(reg)
}
