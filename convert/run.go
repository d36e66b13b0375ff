// Package convert connects reflow engine to the outside world: reads text,
// splits it into paragraphs, formats them and writes the result.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"varfmt/state"
)

// ErrBadWidth is returned when requested width is not a positive integer.
var ErrBadWidth = errors.New("width must be a positive integer")

func parseWidth(arg string) (int, error) {
	width, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadWidth, arg)
	}
	if width < 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	return width, nil
}

// Run is the program action: formats standard input to standard output
// using optional WIDTH argument.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	var width int
	if arg := cmd.Args().Get(0); len(arg) > 0 {
		var err error
		if width, err = parseWidth(arg); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	opts, err := NewOptions(env.Cfg, width)
	if err != nil {
		return err
	}
	opts.Report = env.Rpt

	var (
		in  io.Reader = os.Stdin
		out io.Writer = os.Stdout
	)
	if cmd.Reader != nil {
		in = cmd.Reader
	}
	if cmd.Writer != nil {
		out = cmd.Writer
	}

	log.Debug("Processing starting", zap.Int("width", opts.Width), zap.Int("workers", opts.Workers), zap.Bool("cache", opts.Cache))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return Process(ctx, in, out, opts, log)
}
