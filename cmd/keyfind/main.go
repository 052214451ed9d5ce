package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacoelho/keyfind/internal/config"
	"github.com/jacoelho/keyfind/internal/exit"
	"github.com/jacoelho/keyfind/internal/log"
	"github.com/jacoelho/keyfind/internal/search"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(exitCode)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return exit.Success(config.Usage() + "\n").WithOutput(stdout).Finish()
		}
		return exit.Usage(fmt.Sprintf("Error: %v\n\n%s\n", err, config.Usage())).WithOutput(stderr).Finish()
	}

	logger := log.NewLogger(log.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: stderr,
	})

	summary, err := search.New(*cfg, logger).Run(ctx)
	if err != nil {
		return exit.Errorf("Error: %v\n", err).WithOutput(stderr).Finish()
	}

	if err := summary.Write(stdout, cfg.Format); err != nil {
		return exit.Errorf("Error: failed to write report: %v\n", err).WithOutput(stderr).Finish()
	}

	if summary.HasErrors() {
		return exit.CodeError
	}
	return exit.CodeOK
}
