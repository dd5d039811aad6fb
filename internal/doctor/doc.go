// Package doctor provides diagnostic checks for a syncopener workspace.
//
// A Runner executes Checks and aggregates their CheckResults into a
// Report. Standard returns the workspace checks: the pairs file is present
// and parses, every pair validates, configured directories exist, no file
// lies in both directories of a pair, and files have counterparts.
//
//	ws := doctor.NewWorkspace(root, resolver)
//	runner := doctor.NewRunner()
//	for _, c := range doctor.Standard(ws) {
//	    runner.AddCheck(c)
//	}
//	report := runner.Run()
//	err := doctor.NewReporter(os.Stdout, doctor.FormatText, false).Report(report)
package doctor
