package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/naming"
)

var (
	convertTo     string
	convertPrefix string
	convertExt    string
)

func init() {
	nameConvertCmd.Flags().StringVar(&convertTo, "to", "", "target format: camel, pascal, kebab, snake")
	nameConvertCmd.Flags().StringVar(&convertPrefix, "prefix", "", "target prefix (leading non-alphanumeric characters)")
	nameConvertCmd.Flags().StringVar(&convertExt, "ext", "", "target extension (default: the file's own)")
	_ = nameConvertCmd.MarkFlagRequired("to")

	nameCmd.AddCommand(nameDetectCmd, nameConvertCmd)
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Detect and convert file naming conventions",
}

var nameDetectCmd = &cobra.Command{
	Use:   "detect <file>...",
	Short: "Show the naming convention of file names",
	Example: `  syncopener name detect UserCard.tsx _my_widget.scss
  # UserCard.tsx      pascal-case
  # _my_widget.scss   snake-case   prefix "_"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
		for _, arg := range args {
			base := filepath.Base(arg)
			nf := naming.Detect(base)
			line := base + "\t" + string(nf.Format)
			if nf.Prefix != "" {
				line += fmt.Sprintf("\tprefix %q", nf.Prefix)
			}
			fmt.Fprintln(w, line)
		}
		return errors.Wrap(w.Flush(), "writing output")
	},
}

var nameConvertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a file name to another naming convention",
	Example: `  syncopener name convert myComponent.ts --to kebab --ext .html
  # my-component.html
  syncopener name convert MyWidget.tsx --to snake --prefix _ --ext scss
  # _my_widget.scss`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := naming.ParseFormat(convertTo)
		if err != nil {
			return errors.NewUserError(err, "Use one of: camel, pascal, kebab, snake")
		}

		base := filepath.Base(args[0])
		ext := strings.TrimSpace(convertExt)
		if ext == "" {
			ext = filepath.Ext(base)
		} else if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		rebased := strings.TrimSuffix(base, filepath.Ext(base)) + ext
		src := naming.Detect(rebased)
		dst := naming.NamingFormat{Prefix: convertPrefix, Format: format}
		out := naming.Convert(rebased, src, dst, ext)

		fmt.Fprintln(cmd.OutOrStdout(), out)
		if got := naming.Detect(out); got.Format != format {
			return errors.NewUserError(
				errors.Newf("%s detects as %s, not %s", out, got.Format, format),
				"Names with digits or mixed separators have no convention")
		}
		return nil
	},
}
