package output

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
)

// WarningPrefix tags every warning line.
const WarningPrefix = "gfcss"

// WarnerOptions configures a Warner.
type WarnerOptions struct {
	// Writer receives warning lines. Default: stderr.
	Writer io.Writer

	// Production disables the delayed repeat.
	Production bool

	// RepeatDelay is the delay before the repeat. Zero disables it.
	RepeatDelay time.Duration

	// After schedules f after d. Default: time.AfterFunc.
	After func(d time.Duration, f func())
}

// Warner prints transform warnings with a timestamp and the gfcss prefix.
// Outside production every warning is printed a second time after a delay
// so it is not lost among other console output.
type Warner struct {
	logger     *log.Logger
	production bool
	delay      time.Duration
	after      func(time.Duration, func())
	pending    sync.WaitGroup
}

// NewWarner returns a Warner configured by opts.
func NewWarner(opts WarnerOptions) *Warner {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	after := opts.After
	if after == nil {
		after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return &Warner{
		logger: log.NewWithOptions(w, log.Options{
			Prefix:          WarningPrefix,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           log.WarnLevel,
		}),
		production: opts.Production,
		delay:      opts.RepeatDelay,
		after:      after,
	}
}

// Warn prints w and schedules its repeat when applicable.
func (w *Warner) Warn(d diag.Warning) {
	w.print(d)
	if w.production || w.delay <= 0 {
		return
	}
	w.pending.Add(1)
	w.after(w.delay, func() {
		defer w.pending.Done()
		w.print(d)
	})
}

// WarnAll prints every warning in order.
func (w *Warner) WarnAll(ds []diag.Warning) {
	for _, d := range ds {
		w.Warn(d)
	}
}

// Wait blocks until every scheduled repeat has been printed.
func (w *Warner) Wait() {
	w.pending.Wait()
}

func (w *Warner) print(d diag.Warning) {
	w.logger.Warn(d.Message(), "kind", string(d.Kind), "at", d.Location())
}
