package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/types"
)

// Fixed user-facing messages
const (
	SimulationBanner = "Simulation mode: no filesystem modifications"
	NothingDone      = "Nothing done."
)

// Options controls what a Printer writes
type Options struct {
	// Quiet suppresses everything except errors
	Quiet bool
	// Verbose adds a line per processed target
	Verbose bool
	// NoColor writes plain text
	NoColor bool
}

// Printer writes run output. Regular output goes to out, errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	opts   Options

	done    lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	count   lipgloss.Style
}

// NewPrinter creates a printer writing to out and errOut
func NewPrinter(out, errOut io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(out)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:     out,
		errOut:  errOut,
		opts:    opts,
		done:    r.NewStyle().Foreground(lipgloss.Color("2")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		count:   r.NewStyle().Bold(true),
	}
}

// Banner announces simulation mode
func (p *Printer) Banner() {
	if p.opts.Quiet {
		return
	}
	fmt.Fprintln(p.out, p.warning.Render(SimulationBanner))
}

// Outcome reports a processed target. err is the explanation the invoker
// returned for outcomes other than done.
func (p *Printer) Outcome(t types.Target, o types.Outcome, err error) {
	switch o {
	case types.OutcomeDone:
		if p.opts.Verbose && !p.opts.Quiet {
			fmt.Fprintln(p.out, p.done.Render(fmt.Sprintf("[%s] %sed %s", t.Root, t.Action, t.App)))
		}
	case types.OutcomeIgnored:
		switch {
		case p.opts.Quiet:
		case t.Action != types.ActionIgnore:
			// the name itself was rejected, say why
			fmt.Fprintln(p.out, p.warning.Render(errors.GetErrorMessage(err)))
		case p.opts.Verbose:
			fmt.Fprintln(p.out, p.muted.Render(fmt.Sprintf("[%s] ignored %s", t.Root, t.App)))
		}
	case types.OutcomeMissingSource:
		if !p.opts.Quiet {
			fmt.Fprintln(p.out, p.warning.Render(errors.GetErrorMessage(err)))
		}
	case types.OutcomeFailed:
		p.Error(fmt.Sprintf("failed to %s %s at [%s]", t.Action, t.App, t.Root), err)
	}
}

// Error reports a failure on errOut. It is never suppressed.
func (p *Printer) Error(msg string, err error) {
	lines := []string{msg}
	if output, ok := errors.GetErrorDetails(err)["output"].(string); ok && output != "" {
		lines = append(lines, output)
	}

	if p.opts.NoColor {
		fmt.Fprintln(p.errOut, "ERROR: "+strings.Join(lines, "\n"))
		return
	}
	pterm.Error.WithWriter(p.errOut).Println(strings.Join(lines, "\n"))
}

// SummaryLines returns the summary as plain lines: one per non-zero bucket
// in report order, or NothingDone when every bucket is zero.
func SummaryLines(c types.Counter) []string {
	if c.IsZero() {
		return []string{NothingDone}
	}

	labels := [5]string{
		"stowed in ~",
		"unstowed from ~",
		"stowed in /",
		"unstowed from /",
		"ignored",
	}

	var lines []string
	for i, n := range c.Buckets() {
		if n > 0 {
			lines = append(lines, fmt.Sprintf("%d %s", n, labels[i]))
		}
	}
	return lines
}

// Summary prints the closing summary unless quiet
func (p *Printer) Summary(c types.Counter) {
	if p.opts.Quiet {
		return
	}

	for _, line := range SummaryLines(c) {
		if line == NothingDone {
			fmt.Fprintln(p.out, p.muted.Render(line))
			continue
		}
		n, label, _ := strings.Cut(line, " ")
		fmt.Fprintln(p.out, p.count.Render(n)+" "+label)
	}

	if len(c.Failed) > 0 {
		apps := make([]string, 0, len(c.Failed))
		for _, t := range c.Failed {
			apps = append(apps, t.App)
		}
		fmt.Fprintln(p.out, p.warning.Render(fmt.Sprintf("%d failed: %s", len(c.Failed), strings.Join(apps, ", "))))
	}
}
