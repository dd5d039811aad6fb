package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/syncopener/internal/config"
	"github.com/thoreinstein/syncopener/internal/doctor"
	"github.com/thoreinstein/syncopener/internal/errors"
)

var (
	doctorJSON bool
	doctorAll  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the workspace's pairs",
	Long: `Run diagnostic checks on the workspace's pairs file and directories.

Checks that the pairs file exists and parses, that every pair is valid and
its directories exist, that no file lies in both directories of a pair, and
lists files whose counterpart is missing or whose name cannot be converted.

Output modes:
  (default)   Show errors and warnings
  --all       Show all checks including passed ones
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot("")
	if err != nil {
		// Diagnose the current directory so the missing pairs file is reported.
		if root, err = os.Getwd(); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	// Broken settings are reported as a check; the rest runs on defaults.
	s := settings
	if configLoadErr != nil || s == nil {
		s = &config.Settings{}
	}
	r, err := s.Resolver()
	if err != nil {
		return errors.NewConfigError(err)
	}

	runner := doctor.NewRunner(root)
	runner.AddCheck(&doctor.SettingsCheck{Path: viper.ConfigFileUsed(), Err: configLoadErr})
	runner.AddCheck(doctor.Standard(doctor.NewWorkspace(root, r))...)
	report := runner.Run(cmd.Context())

	format := doctor.FormatText
	if doctorJSON {
		format = doctor.FormatJSON
	}
	if err := doctor.NewReporter(cmd.OutOrStdout(), format, doctorAll).Report(report); err != nil {
		return errors.NewSystemError(err, "")
	}

	switch code := report.ExitCode(); code {
	case errors.ExitSystem:
		return errors.NewExitError(errDoctorErrors, code)
	case errors.ExitUser:
		return errors.NewExitError(errDoctorWarnings, code)
	}
	return nil
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("warnings found")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("errors found")
