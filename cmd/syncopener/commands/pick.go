package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/syncopener/internal/doctor"
	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/pairs"
	"github.com/thoreinstein/syncopener/internal/paths"
)

var pickPrint bool

func init() {
	pickCmd.Flags().BoolVar(&pickPrint, "print", false, "print the counterpart instead of opening it")
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-find a file and open its counterpart",
	Long: `List the files in every configured directory, let you pick one with a
fuzzy finder, and open its counterpart. The preview shows where the
counterpart is and whether it exists.`,
	Example: `  syncopener pick
  syncopener pick --print`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, _ []string) error {
	root, err := workspaceRoot("")
	if err != nil {
		return err
	}
	cfg, err := loadPairs(root)
	if err != nil {
		return err
	}
	r, err := newResolver()
	if err != nil {
		return err
	}

	ws := doctor.NewWorkspace(root, r)
	var files []string
	for _, p := range cfg.Pairs {
		for _, s := range []pairs.Side{pairs.Side1, pairs.Side2} {
			if dir := p.Dir(s).Path; dir != "" {
				files = append(files, ws.Files(dir)...)
			}
		}
	}
	slices.Sort(files)
	files = slices.Compact(files)

	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No files found in the configured directories.")
		return nil
	}

	label := func(i int) string {
		if rel, ok := paths.Rel(root, files[i]); ok {
			return rel
		}
		return files[i]
	}

	idx, err := fuzzyfinder.Find(
		files,
		label,
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			res, err := r.Resolve(cmd.Context(), files[i], root, cfg)
			if err != nil {
				return fmt.Sprintf("%s\n\nno counterpart: %v", label(i), err)
			}
			state := "exists"
			if _, err := os.Stat(res.Target); err != nil {
				state = "missing"
			}
			return fmt.Sprintf("%s\n\ncounterpart: %s (%s)\npair:        %d (%s)\nformat:      %s -> %s",
				label(i), res.Target, state, res.PairIndex, res.Side, res.Source, res.Format)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	res, err := resolveFile(cmd, files[idx])
	if err != nil {
		return err
	}
	if pickPrint {
		fmt.Fprintln(cmd.OutOrStdout(), res.Target)
		return nil
	}
	return openCounterpart(cmd, files[idx], res.Target)
}
