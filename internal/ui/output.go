// Package ui prints human-facing status lines for the metaforge CLI.
//
// Status output goes to stderr so that stdout stays clean for the YAML and
// JSON documents the commands produce.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type level struct {
	color  string
	prefix string
}

var (
	levelSuccess = level{color: colorGreen, prefix: "✓"}
	levelInfo    = level{color: colorCyan, prefix: "info:"}
	levelWarning = level{color: colorYellow, prefix: "warning:"}
	levelError   = level{color: colorRed, prefix: "error:"}
)

// Writer prints styled status lines.
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a Writer on stderr. Color is disabled when noColor is
// true or NO_COLOR is set.
func NewWriter(noColor bool) *Writer {
	return &Writer{
		out:     os.Stderr,
		noColor: noColor || os.Getenv("NO_COLOR") != "",
	}
}

// NewWriterTo creates a Writer on out.
func NewWriterTo(out io.Writer, noColor bool) *Writer {
	return &Writer{out: out, noColor: noColor}
}

// Success prints msg with a green checkmark prefix.
func (w *Writer) Success(msg string) { w.line(levelSuccess, msg) }

// Info prints msg with a cyan "info:" prefix.
func (w *Writer) Info(msg string) { w.line(levelInfo, msg) }

// Warning prints msg with a yellow "warning:" prefix.
func (w *Writer) Warning(msg string) { w.line(levelWarning, msg) }

// Error prints msg with a red "error:" prefix.
func (w *Writer) Error(msg string) { w.line(levelError, msg) }

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) { w.Success(fmt.Sprintf(format, args...)) }

// Infof prints a formatted informational message.
func (w *Writer) Infof(format string, args ...any) { w.Info(fmt.Sprintf(format, args...)) }

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) { w.Warning(fmt.Sprintf(format, args...)) }

// Err prints err as one error line. A multi-error prints one line per
// wrapped error.
func (w *Writer) Err(err error) {
	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		for _, e := range merr.Errors {
			w.Error(e.Error())
		}

		return
	}

	w.Error(err.Error())
}

// Skipped prints each error collected during a scan that kept going past bad
// entries, as warnings.
func (w *Writer) Skipped(err error) {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		w.Warningf("skipped: %v", err)
		return
	}

	for _, e := range merr.Errors {
		w.Warningf("skipped: %v", e)
	}
}

func (w *Writer) styled(color, text string) string {
	if w.noColor {
		return text
	}

	return color + text + colorReset
}

func (w *Writer) line(l level, msg string) {
	// Best-effort: a failing stderr leaves nothing to report to.
	_, _ = fmt.Fprintf(w.out, "%s %s\n", w.styled(l.color, l.prefix), msg)
}
