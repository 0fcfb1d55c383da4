// internal/progress/reporter.go
package progress

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/cloudshift-cli/cloudshift/internal/logger"
)

// Relay forwards a transfer subprocess's output to the console as it arrives
// and tracks enough state for a final summary.
type Relay struct {
	mu        sync.Mutex
	out       io.Writer
	lines     int
	bytes     int64
	startTime time.Time
}

// NewRelay creates a relay writing to out.
func NewRelay(out io.Writer) *Relay {
	return &Relay{out: out}
}

// Start marks the beginning of a transfer.
func (r *Relay) Start(source, destination string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = 0
	r.bytes = 0
	r.startTime = time.Now()

	logger.Info("Starting transfer from %s to %s", source, destination)
}

// Write forwards p verbatim, counting output lines.
func (r *Relay) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines += bytes.Count(p, []byte{'\n'})
	r.bytes += int64(len(p))

	return r.out.Write(p)
}

// Lines returns the number of complete output lines relayed so far.
func (r *Relay) Lines() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lines
}

// Finish logs a one-line summary of the completed transfer.
func (r *Relay) Finish(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := time.Since(r.startTime).Round(time.Second)
	if err != nil {
		logger.Error("Transfer failed after %s: %v", duration, err)
		return
	}
	logger.Info("Transfer complete in %s (%d output lines, %d bytes relayed)", duration, r.lines, r.bytes)
}
