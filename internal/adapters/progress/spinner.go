package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// SpinnerSink shows a spinner on stderr for long-running stages and writes
// info lines to out
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	errOut  io.Writer
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink(out, errOut io.Writer) *SpinnerSink {
	writer := spinner.WithWriter(errOut)
	if f, ok := errOut.(*os.File); ok {
		writer = spinner.WithWriterFile(f)
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, writer)
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
		errOut:  errOut,
	}
}

// OnProgress starts the spinner for spinner events and stops it otherwise
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.errOut, message)
	})
}

// pause stops the spinner while fn writes, then restarts it
func (r *SpinnerSink) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fn()

	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
