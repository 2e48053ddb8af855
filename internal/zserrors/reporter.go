package zserrors

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const (
	ansiBlue   = "\x1B[34m"
	ansiYellow = "\x1B[33m"
	ansiGreen  = "\x1B[32m"
	ansiRed    = "\x1B[31m"
	ansiReset  = "\033[0m"
)

// ErrReporter is the logging collaborator: recoverable warnings, critical
// errors and informational messages shown only in debug mode.
type ErrReporter interface {
	ReportWarning(err error)
	ReportError(err error)
	Log(msg string)
}

type errReporter struct {
	mu    sync.Mutex
	w     io.Writer
	debug bool
	now   func() time.Time
}

type ReporterOption func(*errReporter)

// WithDebug enables informational log lines.
func WithDebug(debug bool) ReporterOption {
	return func(e *errReporter) {
		e.debug = debug
	}
}

// WithClock replaces the time source of log prefixes.
func WithClock(now func() time.Time) ReporterOption {
	return func(e *errReporter) {
		e.now = now
	}
}

func NewErrReporter(w io.Writer, options ...ReporterOption) *errReporter {
	e := &errReporter{w: w, now: time.Now}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// ReportWarning implements ErrReporter.
func (e *errReporter) ReportWarning(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	DefaultReportWarning(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	DefaultReportError(e.w, e.now(), err)
}

// Log implements ErrReporter.
func (e *errReporter) Log(msg string) {
	if !e.debug {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	DefaultLog(e.w, e.now(), msg)
}

// DefaultReportWarning is the default implementation of ErrReporter.ReportWarning.
func DefaultReportWarning(w io.Writer, err error) {
	fmt.Fprintf(w, "%sWARNING: %v%s\n", ansiYellow, err, ansiReset)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
func DefaultReportError(w io.Writer, at time.Time, err error) {
	fmt.Fprintf(w, "%s%s %sZSharp: %sERROR: %v%s\n", ansiBlue, stamp(at), ansiYellow, ansiRed, err, ansiReset)
}

// DefaultLog is the default implementation of ErrReporter.Log.
func DefaultLog(w io.Writer, at time.Time, msg string) {
	fmt.Fprintf(w, "%s%s %sZSharp: %s%s%s\n", ansiBlue, stamp(at), ansiYellow, ansiGreen, msg, ansiReset)
}

func stamp(at time.Time) string {
	return fmt.Sprintf("[%d:%d:%d]", at.Hour(), at.Minute(), at.Second())
}

var _ ErrReporter = (*errReporter)(nil)
