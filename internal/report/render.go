// Package report renders verification results for the terminal.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/danielolaszy/labelcheck/internal/config"
	"github.com/danielolaszy/labelcheck/pkg/models"
)

const dividerWidth = 60

// Renderer writes a human-readable verification report.
type Renderer struct {
	writer      io.Writer
	colorOutput bool
}

// NewRenderer creates a renderer. Colored pass/fail markers are only
// emitted when colorOutput is true.
func NewRenderer(writer io.Writer, colorOutput bool) *Renderer {
	return &Renderer{
		writer:      writer,
		colorOutput: colorOutput,
	}
}

// Render writes the full report for a run against the named target: a
// header naming the target and the Issue/PR numbering rule, one block
// per checked item, and a closing pass/fail banner.
func (r *Renderer) Render(target string, verification *config.VerificationConfig, report *models.Report) {
	divider := strings.Repeat("=", dividerWidth)

	fmt.Fprintln(r.writer, divider)
	fmt.Fprintf(r.writer, "Verifying labels for %s\n", target)
	fmt.Fprintf(r.writer, "Numbers %d-%d are Issues, all others are PRs\n",
		verification.IssueMin, verification.IssueMax)
	fmt.Fprintln(r.writer, divider)

	for _, result := range report.Results {
		fmt.Fprintf(r.writer, "\nChecking %s #%d...\n", result.Kind, result.Number)
		switch {
		case result.Reason != "":
			fmt.Fprintf(r.writer, "  %s: %s\n", r.fail(), result.Reason)
		case result.Passed:
			fmt.Fprintf(r.writer, "  %s: labels match %s\n",
				r.pass(), formatLabels(result.Actual, verification.SortLabels))
		default:
			fmt.Fprintf(r.writer, "  %s: labels do not match\n", r.fail())
			fmt.Fprintf(r.writer, "    expected: %s\n", formatLabels(result.Expected, verification.SortLabels))
			fmt.Fprintf(r.writer, "    actual:   %s\n", formatLabels(result.Actual, verification.SortLabels))
		}
	}

	fmt.Fprintln(r.writer)
	fmt.Fprintln(r.writer, divider)
	if report.AllPassed {
		fmt.Fprintf(r.writer, "%s: all %d checks passed\n", r.pass(), len(report.Results))
	} else {
		fmt.Fprintf(r.writer, "%s: %d of %d checks failed\n",
			r.fail(), report.FailureCount(), len(report.Results))
	}
	fmt.Fprintln(r.writer, divider)
}

func (r *Renderer) pass() string {
	if r.colorOutput {
		return color.New(color.FgGreen, color.Bold).Sprint("PASS")
	}
	return "PASS"
}

func (r *Renderer) fail() string {
	if r.colorOutput {
		return color.New(color.FgRed, color.Bold).Sprint("FAIL")
	}
	return "FAIL"
}

// formatLabels renders a label list the way it was compared: as a sorted
// copy when order-insensitive comparison is in effect, otherwise as-is.
func formatLabels(labels []string, sorted bool) string {
	if sorted && len(labels) > 1 {
		copied := make([]string, len(labels))
		copy(copied, labels)
		sort.Strings(copied)
		labels = copied
	}
	return "[" + strings.Join(labels, ", ") + "]"
}
