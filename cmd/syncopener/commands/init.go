package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/naming"
	"github.com/thoreinstein/syncopener/internal/pairs"
)

var (
	initFormat string
	initForce  bool
)

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", "json", "pairs file format: json, yaml, toml")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing pairs file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter pairs file",
	Long: `Write a pairs file with one example pair to the workspace root
(--workspace, default: the current directory).

The example pairs PascalCase .tsx components with kebab-case .scss styles;
edit it to match your layout and run syncopener doctor to check it.

With --force an existing pairs file is backed up first; see
syncopener backup list.`,
	Example: `  syncopener init
  syncopener init --format yaml
  syncopener init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// starterPairs is written by init.
func starterPairs() []pairs.Pair {
	return []pairs.Pair{{
		Directory1: pairs.DirectorySpec{
			Path:       "src/components",
			Extension:  ".tsx",
			FileFormat: &naming.NamingFormat{Format: naming.Pascal},
		},
		Directory2: pairs.DirectorySpec{
			Path:       "src/styles",
			Extension:  ".scss",
			FileFormat: &naming.NamingFormat{Format: naming.Kebab},
		},
	}}
}

func runInit(cmd *cobra.Command, _ []string) error {
	enc := pairs.Encoding(initFormat)
	switch enc {
	case pairs.EncodingJSON, pairs.EncodingYAML, pairs.EncodingTOML:
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", initFormat), "Use one of: json, yaml, toml")
	}

	root := workspaceFlag
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return errors.NewUserError(err, "check the --workspace path")
	}

	out := cmd.OutOrStdout()
	if existing, _, err := pairs.Find(root); err == nil {
		if !initForce {
			fmt.Fprintf(out, "Pairs file already exists at %s\n", existing)
			fmt.Fprintln(out, "Use --force to overwrite")
			return nil
		}
		mgr := backupManager()
		mf, err := mgr.Backup(root, "init --force", []string{existing})
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		if err := mgr.Retain(root); err != nil {
			return errors.NewSystemError(err, "")
		}
		fmt.Fprintf(out, "Backed up %s as %s\n", filepath.Base(existing), mf.ID)
		// Load prefers .syncopener, so a replaced file of another format must go.
		if err := os.Remove(existing); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "removing %s", existing), "")
		}
	}

	path, err := pairs.Write(root, starterPairs(), enc)
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
