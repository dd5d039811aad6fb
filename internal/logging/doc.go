// Package logging provides structured logging for syncopener using slog.
//
// The package supports text and JSON output, verbosity-driven levels and a
// logger carried in a context.Context so event handlers log through the
// logger configured by the CLI. Every processed editor event writes its
// outcome through this package; it is the tool's output channel.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Info("resolved", "target", target)
//
// # Testing
//
// Use [ForTest] to route log output through the testing framework:
//
//	logger := logging.ForTest(t)
package logging
