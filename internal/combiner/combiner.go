// Package combiner reads two lines, prints them and prints their concatenation.
package combiner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/draganm/something/internal/line"
	"github.com/draganm/something/internal/memory"
	"github.com/draganm/something/internal/metrics"
	"github.com/draganm/something/internal/models"
)

type Config struct {
	// MaxSize is the capacity of each line buffer, terminator included.
	// The combined buffer gets twice as much.
	MaxSize   int
	Allocator memory.Allocator
	Input     io.Reader
	Output    io.Writer
	Logger    *slog.Logger
}

// Result holds the three strings of a completed run
type Result struct {
	First     string
	Second    string
	Combined  string
	Truncated bool
}

type Combiner struct {
	cfg   *Config
	in    *bufio.Reader
	log   *slog.Logger
	state models.State
}

// New creates a combiner. cfg is copied; the caller's value is left untouched.
func New(config *Config) (*Combiner, error) {
	cfg := *config
	if cfg.MaxSize == 0 {
		cfg.MaxSize = models.MaxSizeOfAnything
	}
	if cfg.MaxSize < 0 {
		return nil, fmt.Errorf("max size must be positive, got %d", cfg.MaxSize)
	}
	if cfg.Allocator == nil {
		cfg.Allocator = memory.NewHeapAllocator(2 * cfg.MaxSize)
	}
	if cfg.Input == nil || cfg.Output == nil {
		return nil, errors.New("input and output are required")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	in, ok := cfg.Input.(*bufio.Reader)
	if !ok {
		in = bufio.NewReader(cfg.Input)
	}

	return &Combiner{
		cfg:   &cfg,
		in:    in,
		log:   log,
		state: models.StateInit,
	}, nil
}

// State returns the step the combiner has reached
func (c *Combiner) State() models.State {
	return c.state
}

// Run walks the combiner from init to done. An allocation failure stops it
// with a *FailureError; nothing is retried.
func (c *Combiner) Run(ctx context.Context) (*Result, error) {
	if c.state != models.StateInit {
		return nil, fmt.Errorf("combiner already ran to state %s", c.state)
	}

	first, err := c.acquire(ctx, promptFirst, reasonFirst, diagFirst, models.PossiblySomething)
	if err != nil {
		return nil, err
	}
	defer first.Buffer().Release()
	fmt.Fprintf(c.cfg.Output, echoFirst, first)
	c.advance()

	second, err := c.acquire(ctx, promptSecond, reasonSecond, diagSecond, models.DefinitelyNothing)
	if err != nil {
		return nil, err
	}
	defer second.Buffer().Release()
	fmt.Fprintf(c.cfg.Output, echoSecond, second)
	c.advance()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fmt.Fprintf(c.cfg.Output, announce, first, second)

	// twice the line size is asked for, but only one line's worth is written
	combined, err := line.FormatInto(c.cfg.Allocator, 2*c.cfg.MaxSize, c.cfg.MaxSize, reasonCombined, combineFormat, first, second)
	if err != nil {
		return nil, c.fail(diagCombined, models.PossiblyNothing, err)
	}
	defer combined.Buffer().Release()
	if combined.Truncated() {
		c.log.Warn("Combined string truncated", "size", combined.Cap(), "want", combined.Want())
	}
	c.advance()

	fmt.Fprintf(c.cfg.Output, result, combined)
	fmt.Fprint(c.cfg.Output, closing)
	c.advance()

	return &Result{
		First:     first.String(),
		Second:    second.String(),
		Combined:  combined.String(),
		Truncated: combined.Truncated(),
	}, nil
}

func (c *Combiner) acquire(ctx context.Context, prompt, reason, diag string, score models.Existence) (line.Line, error) {
	if err := ctx.Err(); err != nil {
		return line.Line{}, err
	}

	buf, err := c.cfg.Allocator.Allocate(c.cfg.MaxSize, reason)
	if err != nil {
		return line.Line{}, c.fail(diag, score, err)
	}
	if buf == nil {
		return line.Line{}, c.fail(diag, score, memory.ErrAllocationFailure)
	}
	c.log.Debug("Allocated buffer", "state", c.state, "size", buf.Cap(), "reason", reason)

	fmt.Fprint(c.cfg.Output, prompt)
	l, err := line.ReadLine(c.in, buf)
	switch {
	case errors.Is(err, io.EOF):
		c.log.Debug("End of input, using an empty line", "state", c.state)
	case err != nil:
		c.log.Warn("Failed to read line, using what was read", "state", c.state, "error", err)
	}
	return l, nil
}

func (c *Combiner) advance() {
	next := c.state.Next()
	c.log.Debug("State transition", "from", c.state, "to", next)
	metrics.StateTransitions.WithLabelValues(string(next)).Inc()
	c.state = next
}

func (c *Combiner) fail(diag string, score models.Existence, err error) error {
	c.log.Debug("Allocation failed", "state", c.state, "score", score, "error", err)
	return &FailureError{
		State:      c.state,
		Diagnostic: diag,
		Status:     models.DefinitelySomething,
		Score:      score,
		Err:        err,
	}
}
