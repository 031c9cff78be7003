package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/draganm/something/internal/combiner"
	"github.com/draganm/something/internal/memory"
	"github.com/draganm/something/internal/metrics"
	"github.com/draganm/something/internal/models"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		log.Error("Error running app", "error", err)
		os.Exit(1)
	}

}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "something",
		Usage:     "Reads two things and combines them into something new",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error), logs go to stderr",
				EnvVars: []string{"SOMETHING_LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "max-size",
				Value:   models.MaxSizeOfAnything,
				Usage:   "capacity of each line buffer in bytes, terminator included",
				EnvVars: []string{"SOMETHING_MAX_SIZE"},
			},
			&cli.PathFlag{
				Name:    "metrics-textfile",
				Usage:   "write metrics in the node_exporter textfile format to this path on exit",
				EnvVars: []string{"SOMETHING_METRICS_TEXTFILE"},
			},
			&cli.IntFlag{
				Name:    "fail-allocation",
				Usage:   "refuse the Nth allocation request",
				Hidden:  true,
				EnvVars: []string{"SOMETHING_FAIL_ALLOCATION"},
			},
		},
		// main decides the exit code
		ExitErrHandler: func(*cli.Context, error) {},
		Action:         run,
	}
}

func run(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.New().String()[:8])

	maxSize := c.Int("max-size")
	if maxSize <= 0 {
		return fmt.Errorf("max size must be positive, got %d", maxSize)
	}

	var alloc memory.Allocator = memory.NewHeapAllocator(2 * maxSize)
	if n := c.Int("fail-allocation"); n > 0 {
		alloc = memory.NewFailingAllocator(alloc, n)
	}

	log.Info("Starting something",
		"max_size", maxSize,
		"interactive", isTerminal(c.App.Reader),
	)

	cmb, err := combiner.New(&combiner.Config{
		MaxSize:   maxSize,
		Allocator: alloc,
		Input:     c.App.Reader,
		Output:    c.App.Writer,
		Logger:    log,
	})
	if err != nil {
		return fmt.Errorf("failed to create combiner: %w", err)
	}

	res, runErr := cmb.Run(c.Context)

	if path := c.Path("metrics-textfile"); path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			log.Warn("Failed to write metrics", "path", path, "error", err)
		}
	}

	if fe, ok := combiner.AsFailure(runErr); ok {
		fmt.Fprint(c.App.Writer, fe.Diagnostic)
		// the score has no consumer outside the logs
		log.Info("Exiting after allocation failure",
			"state", fe.State,
			"status", fe.Status,
			"score", int(fe.Score),
			"error", fe.Err,
		)
		return cli.Exit("", int(fe.Status))
	}
	if runErr != nil {
		return runErr
	}

	log.Info("Produced something new", "length", len(res.Combined), "truncated", res.Truncated)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
