package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/syncopener/internal/bridge"
	"github.com/thoreinstein/syncopener/internal/logging"
	"github.com/thoreinstein/syncopener/internal/opener"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an editor extension over stdin and stdout",
	Long: `Run the opener for an editor extension.

The extension starts syncopener serve and exchanges JSON lines with it:
it sends an event whenever a document is opened or focused, and answers
requests for the workspace root, the active and visible documents, and
to open or show a document. Logs go to stderr.

serve exits when stdin is closed or on SIGINT/SIGTERM.`,
	Example: `  syncopener serve -vv --log-file /tmp/syncopener.log`,
	Args:    cobra.NoArgs,
	RunE:    runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	r, err := newResolver()
	if err != nil {
		return err
	}

	client := bridge.NewClient(cmd.InOrStdin(), cmd.OutOrStdout())
	client.Start(ctx)

	coord := opener.New(client, r, opener.WithGuard(opener.NewGuard(settleDelay())))
	log.Info("serving editor bridge", "match", r.Strategy().Name(), "settle_delay", settleDelay())

	if err := coord.Run(ctx, client.Events()); err != nil && ctx.Err() == nil {
		return err
	}
	log.Info("editor bridge closed")
	return client.Err()
}
