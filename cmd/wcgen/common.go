package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/oukeidos/wcgen/internal/cleanup"
	"github.com/oukeidos/wcgen/internal/files"
	"github.com/oukeidos/wcgen/internal/logger"
	"github.com/oukeidos/wcgen/internal/prompt"
)

// Replaced in tests.
var newConfirmer = prompt.DefaultConfirmer

// initLogging configures the global logger, optionally mirroring JSON lines
// into logFilePath.
func initLogging(debug bool, logFilePath string) error {
	level := logger.LevelInfo
	if debug {
		level = logger.LevelDebug
	}
	var logFileW io.Writer
	if logFilePath != "" {
		if err := files.RejectSymlinkPath(logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register("log file", f.Close)
		logFileW = f
	}
	logger.Init(level, logFileW)
	return nil
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("Cancellation requested")
			cancel()
		case <-ctx.Done():
		}
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
