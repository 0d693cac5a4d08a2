package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/AlexPlatt23/rulekit/pkg/game"
	"github.com/AlexPlatt23/rulekit/pkg/validation"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type reportError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type reportEntry struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Valid bool         `json:"valid"`
	Error *reportError `json:"error,omitempty"`
	Game  *game.Valid  `json:"game,omitempty"`
}

func newLogger(debug bool, stderr io.Writer) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(stderr, "gamecheck: build logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func run(ctx context.Context, args []string, cfg Config, logger *zap.Logger, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gamecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "", "record format: yaml or json (default: from extension)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: gamecheck [-format yaml|json] <file>")
		return exitUsage
	}
	path := fs.Arg(0)

	f := game.Format(*format)
	if f == "" {
		f = game.FormatFromPath(path)
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Error("open records", zap.String("path", path), zap.Error(err))
		return exitUsage
	}
	defer file.Close()

	inputs, err := game.Decode(file, f)
	if err != nil {
		logger.Error("decode records", zap.String("path", path), zap.Error(err))
		return exitUsage
	}

	rs := game.DefaultRuleset(cfg.Rules(), validation.WithLogger(logger))
	report := make([]reportEntry, 0, len(inputs))
	invalid := 0

	results, err := validateAll(ctx, rs, inputs, cfg.Workers)
	if err != nil {
		logger.Error("validate records", zap.Error(err))
		return exitUsage
	}

	for i, res := range results {
		name := inputs[i].Name
		entry := validation.Finally(res,
			func(v game.Valid) reportEntry {
				return reportEntry{Name: name, Valid: true, Game: &v}
			},
			func(v game.Violation) reportEntry {
				return reportEntry{Name: name, Error: &reportError{Code: v.Code(), Message: v.Error()}}
			})
		entry.ID = res.Id().String()
		if !entry.Valid {
			invalid++
		}
		report = append(report, entry)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Error("encode report", zap.Error(err))
		return exitUsage
	}

	logger.Info("records validated",
		zap.String("path", path),
		zap.Int("total", len(inputs)),
		zap.Int("invalid", invalid))

	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}
