// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/gem-translator/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of one translation.
func (p *Printer) PrintResult(r *types.Result) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input:      %s\n", r.Input))
	sb.WriteString(fmt.Sprintf("EMS type:   %s (weight %.2f)\n", r.Summary.BestType, r.Summary.BestWeight))
	sb.WriteString(fmt.Sprintf("VC class:   %s (base %s)\n", r.VCClass, r.VCClassBase))
	sb.WriteString(fmt.Sprintf("80%% range:  %s\n", r.Summary.CredibleRange80))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", r.Confidence))
	if r.Summary.ModifiersFired > 0 {
		sb.WriteString(fmt.Sprintf("Modifiers:  %d fired, shift %+.2f\n",
			r.Summary.ModifiersFired, r.Summary.CumulativeShift))
	}
	if len(r.Uncertainty.MissingFeatures) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:    %s\n", strings.Join(r.Uncertainty.MissingFeatures, ", ")))
	}
	p.printBox("Translation", strings.TrimRight(sb.String(), "\n"))
}

// PrintCandidates outputs the candidate list of one translation.
func (p *Printer) PrintCandidates(r *types.Result) {
	if r == nil || len(r.Candidates) == 0 {
		return
	}
	var sb strings.Builder
	for i, c := range r.Candidates {
		sb.WriteString(fmt.Sprintf("%d. %-8s weight=%.4f conf=%.4f rule=%s",
			i+1, c.Type, c.Weight, c.Confidence, c.RuleID))
		if len(c.Flags) > 0 {
			sb.WriteString(" [" + strings.Join(c.Flags, ",") + "]")
		}
		if i < len(r.Candidates)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("EMS candidates", sb.String())
}

// PrintModifiers outputs the fired modifier trace of one translation.
func (p *Printer) PrintModifiers(r *types.Result) {
	if r == nil || len(r.ModifiersApplied) == 0 {
		return
	}
	var sb strings.Builder
	for i, m := range r.ModifiersApplied {
		sb.WriteString(fmt.Sprintf("%-26s shift=%+.2f penalty=%.2f", m.ID, m.Shift, m.ConfidencePenalty))
		if i < len(r.ModifiersApplied)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("VC modifiers", sb.String())
}

// PrintDistribution outputs final and base class probabilities side by side.
func (p *Printer) PrintDistribution(r *types.Result) {
	if r == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString("class  final    base\n")
	last := types.ClassOrder[len(types.ClassOrder)-1]
	for _, cls := range types.ClassOrder {
		sb.WriteString(fmt.Sprintf("%-5s  %.4f   %.4f", cls, r.VCProbs[cls], r.VCProbsBase[cls]))
		if cls != last {
			sb.WriteString("\n")
		}
	}
	p.printBox("VC distribution", sb.String())
}

// PrintWarnings outputs accumulated warnings, if any.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(p.out, "Warning: %s\n", w)
	}
}
