// Package logger provides the application's structured logging setup.
//
// It wraps go.uber.org/zap with a small configuration surface (level and
// encoding) and a helper to attach the per-request ray id to a logger so that
// every log line produced while serving a request can be correlated.
//
// # Usage
//
//	logg, err := logger.New(&cfg.Log)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logg.Sync()
package logger
