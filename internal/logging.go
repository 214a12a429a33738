package internal

import (
	"io"

	"github.com/rs/zerolog"
)

// newNoopLogger returns a zerolog.Logger writing to io.Discard at a level
// above any event we emit, so Logger.Debug()... calls cost a level check
// and nothing else when logging hasn't been enabled.
func newNoopLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// EnableLogging points the runtime's logger at w. The runtime emits
// debug-level events at flush start and end, and an error event when a flush
// aborts; transition commit/abort and cycle faults are not logged.
func (r *Runtime) EnableLogging(w io.Writer) {
	r.logger = zerolog.New(w).With().Timestamp().Logger()
}
