package doctor

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/syncopener/internal/errors"
)

// Format specifies the output format for doctor reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes doctor reports.
type Reporter struct {
	out     io.Writer
	format  Format
	showAll bool
}

// NewReporter creates a new Reporter. Text output lists only warnings and
// errors unless showAll is set.
func NewReporter(out io.Writer, format Format, showAll bool) *Reporter {
	return &Reporter{out: out, format: format, showAll: showAll}
}

// Report writes the report to the output.
func (r *Reporter) Report(report *Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON report")
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportText(report *Report) error {
	if report.Root != "" {
		fmt.Fprintf(r.out, "Workspace: %s\n\n", report.Root)
	}

	shown := false
	for _, res := range report.Results {
		problem := res.Status.Problem()
		if !r.showAll && !problem {
			continue
		}
		shown = true

		fmt.Fprintf(r.out, "%s [%s] %s: %s\n", statusIcon(res.Status), res.Category, res.Name, res.Message)
		r.printDetails(res.Details)
		if res.FixHint != "" && problem {
			fmt.Fprintf(r.out, "  %s %s\n", color.New(color.FgHiBlack).Sprint("hint:"), res.FixHint)
		}
	}

	if shown {
		fmt.Fprintln(r.out)
	}

	summary := []string{color.GreenString("%d passed", report.Summary.Passed), fmt.Sprintf("%d info", report.Summary.Info)}
	warnings := fmt.Sprintf("%d warnings", report.Summary.Warnings)
	if report.Summary.Warnings > 0 {
		warnings = color.YellowString("%s", warnings)
	}
	errs := fmt.Sprintf("%d errors", report.Summary.Errors)
	if report.Summary.Errors > 0 {
		errs = color.RedString("%s", errs)
	}
	summary = append(summary, warnings, errs)

	_, err := fmt.Fprintf(r.out, "Summary: %s\n", strings.Join(summary, ", "))
	return errors.Wrap(err, "writing report")
}

// printDetails prints list-valued details as indented bullets.
func (r *Reporter) printDetails(details map[string]any) {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		items, ok := details[k].([]string)
		if !ok || len(items) == 0 {
			continue
		}
		fmt.Fprintf(r.out, "  %s:\n", k)
		for _, item := range items {
			fmt.Fprintf(r.out, "    - %s\n", item)
		}
	}
}

func statusIcon(s Severity) string {
	switch s {
	case SeverityPass:
		return color.GreenString("✓")
	case SeverityInfo:
		return color.CyanString("ℹ")
	case SeverityWarning:
		return color.YellowString("⚠")
	case SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
