// Package logger wires log/slog for datakit tools and adds a small Messenger
// for indented, human-oriented progress output.
//
// New builds a *slog.Logger from functional options: output format (text or
// JSON), minimum level, static attributes and ContextExtractor callbacks that
// pull values from context.Context on every record. Helper constructors such as
// Component, Rows, Groups and Path keep attribute keys consistent between
// packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("datakit"),
//	    logger.WithContextValue("run_id", runIDKey),
//	)
//	log.Info("folded", logger.Rows(n), logger.Groups(k))
//
//	msg := logger.NewMessenger(logger.WithVerbose(cfg.Verbose))
//	msg.Msg("Loading data")
//	_ = msg.WithAddedIndentation(2, func() {
//	    msg.Msg("rows:", n)
//	})
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. WithFormat panics on an unknown format. Messenger
// indentation changes return ErrNegativeIndent instead of going below zero.
package logger
