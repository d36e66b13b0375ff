package convert

import (
	"fmt"
	"runtime"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"varfmt/config"
	"varfmt/reflow"
)

// Options controls single Process call. Zero Depth and zero Balance are
// replaced with paragraph.DefaultDepth and reflow.DefaultBalance.
type Options struct {
	Width   int
	Depth   int
	Balance reflow.Balance
	// Workers is number of blocks formatted concurrently, 1 disables concurrency.
	Workers     int
	Cache       bool
	MaxLineSize int
	// Encoding of input and output, nil means UTF-8 with optional byte
	// order mark on input.
	Encoding encoding.Encoding
	Report   *config.Report
}

// NewOptions builds Options from configuration. Width overrides configured
// value when positive.
func NewOptions(cfg *config.Config, width int) (Options, error) {
	opts := Options{
		Width: cfg.Reflow.Width,
		Depth: cfg.Reflow.PrefixDepth,
		Balance: reflow.Balance{
			ShortParagraph: cfg.Reflow.Balance.ShortParagraph,
			TailRatio:      cfg.Reflow.Balance.TailRatio,
		},
		Workers:     cfg.Reflow.Workers,
		Cache:       cfg.Reflow.Cache,
		MaxLineSize: cfg.Reflow.MaxLineSize,
	}
	if width > 0 {
		opts.Width = width
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	if len(cfg.Input.Encoding) > 0 {
		enc, err := ianaindex.IANA.Encoding(cfg.Input.Encoding)
		if err != nil {
			return Options{}, fmt.Errorf("unknown character set %q: %w", cfg.Input.Encoding, err)
		}
		if enc == nil {
			return Options{}, fmt.Errorf("unsupported character set %q", cfg.Input.Encoding)
		}
		opts.Encoding = enc
	}
	return opts, nil
}
