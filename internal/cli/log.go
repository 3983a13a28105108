package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps are "HH:MM:SS.ms"
// (e.g. "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// jobProgress times one job and logs each finished step with the job name
// and the time since the job started.
type jobProgress struct {
	logger *log.Logger
	job    string
	start  time.Time
}

func newJobProgress(l *log.Logger, job string) *jobProgress {
	return &jobProgress{logger: l, job: job, start: time.Now()}
}

// step logs a finished step, e.g. "rendered job=watcher elapsed=1.234s".
func (p *jobProgress) step(msg string, keyvals ...any) {
	keyvals = append([]any{"job", p.job, "elapsed", p.elapsed()}, keyvals...)
	p.logger.Info(msg, keyvals...)
}

func (p *jobProgress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}
