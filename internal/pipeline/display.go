package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Display handles terminal progress output for the pipeline.
type Display struct {
	w         io.Writer
	verbose   bool
	openScope string // scope with an in-place running line, "" when none
	stop      chan struct{}
	done      chan struct{}
}

// NewDisplay creates a display that writes to stdout.
func NewDisplay(verbose bool) *Display {
	return &Display{w: os.Stdout, verbose: verbose}
}

// scopeColumnWidth is the fixed display width reserved for the scope column.
const scopeColumnWidth = 44

// Header prints the pipeline header.
func (d *Display) Header(title string) {
	fmt.Fprintf(d.w, "\n🔎 checkrun — %s\n", title)
	fmt.Fprintln(d.w, strings.Repeat("─", 72))
}

// StepStart prints a step-in-progress line and, in non-verbose mode, starts
// an elapsed-time ticker that updates the line in place every second. A
// nested step starting while a line is open finishes that line first.
func (d *Display) StepStart(scope string) {
	d.stopTicker()
	if d.openScope != "" {
		fmt.Fprintln(d.w)
		d.openScope = ""
	}
	if d.verbose {
		fmt.Fprintf(d.w, "⏳ %-*s running...\n", scopeColumnWidth, scope)
		return
	}
	// Print without trailing newline so the ticker can overwrite in place.
	fmt.Fprintf(d.w, "⏳ %-*s running...", scopeColumnWidth, scope)
	d.openScope = scope

	stop := make(chan struct{})
	done := make(chan struct{})
	d.stop = stop
	d.done = done
	start := time.Now()

	go func() {
		defer close(done)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fmt.Fprintf(d.w, "\r⏳ %-*s running... %.0fs",
					scopeColumnWidth, scope, time.Since(start).Seconds())
			}
		}
	}()
}

// stopTicker stops the elapsed-time goroutine and waits for it to finish.
func (d *Display) stopTicker() {
	if d.stop != nil {
		close(d.stop)
		<-d.done
		d.stop = nil
		d.done = nil
	}
}

// StepDone prints a completed step line, overwriting the running line when it
// is still open.
func (d *Display) StepDone(scope string, duration time.Duration) {
	d.stopTicker()
	prefix := ""
	if d.openScope == scope {
		prefix = "\r"
		d.openScope = ""
	}
	durStr := fmt.Sprintf("%.1fs", duration.Seconds())
	fmt.Fprintf(d.w, "%s✅ %-*s %-18s\n", prefix, scopeColumnWidth, scope, durStr)
}

// StepFailed prints a failed step line, overwriting the running line when it
// is still open.
func (d *Display) StepFailed(scope string, err error) {
	d.stopTicker()
	prefix := ""
	if d.openScope == scope {
		prefix = "\r"
		d.openScope = ""
	}
	fmt.Fprintf(d.w, "%s❌ %-*s %-18s\n", prefix, scopeColumnWidth, scope, err.Error())
}

// Summary prints the final run summary.
func (d *Display) Summary(totalDuration time.Duration) {
	fmt.Fprintln(d.w, strings.Repeat("─", 72))
	fmt.Fprintf(d.w, "✅ All checks passed  %.0fs\n\n", totalDuration.Seconds())
}

// Failed prints a failure summary.
func (d *Display) Failed(err error) {
	fmt.Fprintln(d.w, strings.Repeat("─", 72))
	fmt.Fprintf(d.w, "❌ Failed: %s\n\n", err.Error())
}
