package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/syncopener/internal/editor"
	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/opener"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open the counterpart of a file in your editor",
	Long: `Resolve the counterpart of a file and open it with your editor.

The editor command comes from the editor setting, then $VISUAL, then
$EDITOR, then the first of code, nano and vi that is installed.`,
	Example: `  syncopener open src/components/UserCard.tsx
  SYNCOPENER_EDITOR="code --reuse-window" syncopener open src/styles/user-card.scss`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	// Resolve up front so misconfiguration is reported instead of skipped.
	res, err := resolveFile(cmd, args[0])
	if err != nil {
		return err
	}
	return openCounterpart(cmd, args[0], res.Target)
}

// openCounterpart runs the open pipeline for file through a Launcher.
func openCounterpart(cmd *cobra.Command, file, target string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	root, err := workspaceRoot(filepath.Dir(abs))
	if err != nil {
		return err
	}
	r, err := newResolver()
	if err != nil {
		return err
	}

	command := ""
	if settings != nil {
		command = settings.Editor
	}
	launcher := editor.NewLauncher(root, command)
	launcher.Stdin = cmd.InOrStdin()
	launcher.Stdout = cmd.OutOrStdout()
	launcher.Stderr = cmd.ErrOrStderr()
	launcher.SetActive(abs)

	coord := opener.New(launcher, r, opener.WithGuard(opener.NewGuard(0)))
	outcome, err := coord.Handle(cmd.Context(), opener.Event{Kind: opener.EventOpened, Path: abs})
	if err != nil {
		return errors.NewSystemError(err, "Check the editor setting or $VISUAL/$EDITOR")
	}

	switch outcome {
	case opener.OutcomeOpened:
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Opened %s\n", target)
		}
		return nil
	case opener.OutcomeMissing:
		return errors.NewUserError(errors.Newf("counterpart %s does not exist", target), "")
	default:
		return errors.NewUserError(errors.Newf("nothing opened (%s)", outcome), "Run: syncopener doctor")
	}
}
