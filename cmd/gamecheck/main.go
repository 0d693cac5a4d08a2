// Command gamecheck validates a file of game records and prints a JSON report.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	loadDotEnv()

	cfg, err := loadConfig(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamecheck: %v\n", err)
		os.Exit(exitUsage)
	}

	logger := newLogger(cfg.Debug, os.Stderr)
	code := run(context.Background(), os.Args[1:], cfg, logger, os.Stdout, os.Stderr)
	_ = logger.Sync()
	os.Exit(code)
}
