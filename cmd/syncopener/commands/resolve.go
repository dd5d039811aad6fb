package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/resolve"
)

var resolveJSON bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output the resolution as JSON")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Print the counterpart of a file",
	Long: `Resolve a file to its counterpart using the workspace's pairs file.

The counterpart is printed whether or not it exists on disk; --json adds
the pair that matched, the naming formats involved and whether the
counterpart exists.

Exit codes:
  0 - counterpart resolved
  1 - no pair yields a counterpart, or the file type is never synced`,
	Example: `  syncopener resolve src/components/UserCard.tsx
  syncopener resolve --json src/styles/user-card.scss`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// resolution is the JSON output of resolve.
type resolution struct {
	*resolve.Result
	Source string `json:"source_path"`
	Exists bool   `json:"exists"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	res, err := resolveFile(cmd, args[0])
	if err != nil {
		return err
	}

	if !resolveJSON {
		fmt.Fprintln(cmd.OutOrStdout(), res.Target)
		return nil
	}

	abs, _ := filepath.Abs(args[0])
	_, statErr := os.Stat(res.Target)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(resolution{Result: res, Source: abs, Exists: statErr == nil}), "encoding JSON")
}

// resolveFile finds the counterpart of file in its workspace.
func resolveFile(cmd *cobra.Command, file string) (*resolve.Result, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, errors.NewUserError(err, "")
	}

	root, err := workspaceRoot(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}
	cfg, err := loadPairs(root)
	if err != nil {
		return nil, err
	}
	r, err := newResolver()
	if err != nil {
		return nil, err
	}

	res, err := r.Resolve(cmd.Context(), abs, root, cfg)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, errors.ErrUnsupportedExtension):
		return nil, errors.NewUserError(err, "Supported extensions are set with the extensions setting")
	default:
		return nil, errors.NewUserError(err, "Run: syncopener doctor")
	}
}
