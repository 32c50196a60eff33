// Package logging provides structured logging for taskmemo.
//
// This package wraps Go's log/slog to write JSON-formatted logs to a file.
// The TUI owns the terminal while it runs, so logs never go to stdout; point
// logging.dir at a directory and read it with `taskmemo logs` instead.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("todo added", "count", 3)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	calcLogger := logger.WithComponent("calc")
//	calcLogger.Debug("expensive calculation running", "count", 4)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"expensive calculation running","component":"calc","count":4}
//
// # Rotation
//
// [NewRotatingLogger] moves debug.log to debug.log.1 once it grows past
// RotationConfig.MaxSizeMB, shifting older backups up to MaxBackups:
//
//	logger, err := logging.NewRotatingLogger(dir, "DEBUG", logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	})
//
// # Testing
//
// Use [NopLogger] to discard all log output, or [NewWriterLogger] to capture
// entries in a buffer.
package logging
