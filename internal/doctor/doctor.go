package doctor

import (
	"context"
	"time"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/logging"
)

// Check is one diagnostic of a workspace.
type Check interface {
	// Name returns the unique identifier for this check.
	Name() string

	// Category returns the grouping for this check ("config" or "layout").
	Category() string

	// Run executes the check.
	Run(ctx context.Context) *CheckResult
}

// Runner runs checks against one workspace in the order they were added.
type Runner struct {
	root   string
	checks []Check
}

// NewRunner creates a runner for the workspace at root.
func NewRunner(root string) *Runner {
	return &Runner{root: root}
}

// AddCheck registers checks with the runner.
func (r *Runner) AddCheck(checks ...Check) {
	r.checks = append(r.checks, checks...)
}

// Run executes all registered checks and returns a report.
func (r *Runner) Run(ctx context.Context) *Report {
	log := logging.FromContext(ctx)
	report := &Report{
		Timestamp: time.Now().UTC(),
		Root:      r.root,
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		start := time.Now()
		result := check.Run(ctx)
		if result.Name == "" {
			result.Name = check.Name()
		}
		if result.Category == "" {
			result.Category = check.Category()
		}
		log.Debug("doctor check", "check", result.Name, "status", result.Status.String(), "took", time.Since(start))

		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	return report
}

// Report aggregates all check results with timing and summary.
type Report struct {
	// Timestamp is when the diagnostic run started.
	Timestamp time.Time `json:"timestamp"`

	// Root is the workspace that was diagnosed.
	Root string `json:"root,omitempty"`

	// Results contains the outcome of each check.
	Results []*CheckResult `json:"results"`

	// Summary contains counts by severity level.
	Summary Summary `json:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// ExitCode maps the report to a process exit code: ExitSystem with errors,
// ExitUser with only warnings, ExitSuccess otherwise.
func (r *Report) ExitCode() int {
	switch {
	case r.HasErrors():
		return errors.ExitSystem
	case r.HasWarnings():
		return errors.ExitUser
	default:
		return errors.ExitSuccess
	}
}

// Standard returns the workspace checks in the order they should run.
func Standard(ws *Workspace) []Check {
	return []Check{
		&PairsFileCheck{ws: ws},
		&PairsValidCheck{ws: ws},
		&DirectoriesCheck{ws: ws},
		&AmbiguityCheck{ws: ws},
		&OrphanCheck{ws: ws},
	}
}
