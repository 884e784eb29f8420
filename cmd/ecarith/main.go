package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.root.Execute(); err != nil {
		logger := app.logger
		if logger == nil {
			logger = app.fallbackLogger()
		}
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
