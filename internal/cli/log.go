// Package cli implements the dienstplan command-line interface.
//
// The commands read a weekly roster workbook, answer staffing queries and
// render the printed plans. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - run: the weekly batch (find the workbook, render all plans, archive them)
//   - parse: convert a workbook to JSON
//   - query: group, shift, event and hours queries for one day
//   - render: render selected views and formats
//   - serve: answer the same queries over HTTP
//   - browse: interactive terminal view of the group rosters
//   - archive: copy rendered plans into the archive
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dienstplan/dienstplan/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 6 files (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline, archive and server events at debug level.
type logHooks struct {
	logger *log.Logger
}

// installLogHooks routes observability events to l.
func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetArchiveHooks(h)
	observability.SetServerHooks(h)
}

func (h logHooks) OnParseStart(_ context.Context, source string) {
	h.logger.Debug("reading roster", "source", source)
}

func (h logHooks) OnParseComplete(_ context.Context, source string, employees int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("reading roster failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("read roster", "source", source, "employees", employees, "duration", d)
}

func (h logHooks) OnLayoutStart(_ context.Context, view string, rows int) {
	h.logger.Debug("building view", "view", view, "rows", rows)
}

func (h logHooks) OnLayoutComplete(_ context.Context, view string, d time.Duration, err error) {
	h.logger.Debug("view ready", "view", view, "duration", d, "err", err)
}

func (h logHooks) OnRenderStart(_ context.Context, view string, formats []string) {
	h.logger.Debug("rendering", "view", view, "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, view string, formats []string, d time.Duration, err error) {
	h.logger.Debug("rendered", "view", view, "formats", formats, "duration", d, "err", err)
}

func (h logHooks) OnArchived(_ context.Context, dir string, files int) {
	h.logger.Debug("archived", "dir", dir, "files", files)
}

func (h logHooks) OnArchiveSkipped(_ context.Context, dir string) {
	h.logger.Debug("archive exists", "dir", dir)
}

func (h logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "duration", d)
}
