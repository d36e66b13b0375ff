package convert

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"varfmt/paragraph"
	"varfmt/reflow"
)

// result is filled by the worker formatting block, slots are allocated in
// input order so output order does not depend on scheduling.
type result struct {
	layout *reflow.Layout
}

// Process reads text from r, reflows every paragraph and writes result to w.
// Nothing is written unless all of the input has been formatted.
func Process(ctx context.Context, r io.Reader, w io.Writer, opts Options, log *zap.Logger) error {
	if opts.Width < 1 {
		return fmt.Errorf("%w: %d", ErrBadWidth, opts.Width)
	}

	if opts.Report != nil {
		raw := new(bytes.Buffer)
		r = io.TeeReader(r, raw)
		// even partial input helps when something went wrong
		defer func() {
			opts.Report.StoreData("input.txt", raw.Bytes())
		}()
	}

	if opts.Encoding != nil {
		r = transform.NewReader(r, opts.Encoding.NewDecoder())
	} else {
		var enc srcEncoding
		if r, enc = sniffReader(r); enc != encUnknown {
			log.Debug("Byte order mark detected", zap.Stringer("encoding", enc))
		}
	}

	maxLine := opts.MaxLineSize
	if maxLine <= 0 {
		maxLine = bufio.MaxScanTokenSize
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(maxLine, bufio.MaxScanTokenSize)), maxLine)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	lines := func(yield func(string) bool) {
		for sc.Scan() {
			if gctx.Err() != nil {
				return
			}
			if !yield(strings.TrimSuffix(sc.Text(), "\r")) {
				return
			}
		}
	}

	var cache *layoutCache
	if opts.Cache {
		cache = newLayoutCache()
	}
	if opts.Depth == 0 {
		opts.Depth = paragraph.DefaultDepth
	}
	if opts.Balance == (reflow.Balance{}) {
		opts.Balance = reflow.DefaultBalance
	}
	engine := reflow.New(reflow.WithBalance(opts.Balance))
	seg := &paragraph.Segmenter{Width: opts.Width, Depth: opts.Depth}

	var results []*result
	for b := range seg.Blocks(lines) {
		res := &result{}
		results = append(results, res)
		n := len(results)
		g.Go(func() error {
			l, err := cache.layout(engine, b)
			if err != nil {
				return fmt.Errorf("unable to format paragraph %d: %w", n, err)
			}
			res.layout = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := new(bytes.Buffer)
	count := 0
	for _, res := range results {
		for _, line := range res.layout.Text {
			out.WriteString(line)
			out.WriteByte('\n')
			count++
		}
	}

	if err := writeOutput(w, out.Bytes(), opts.Encoding); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	log.Debug("Text formatted",
		zap.Int("blocks", len(results)),
		zap.Int("lines", count),
		zap.Int("width", opts.Width))
	if cache != nil {
		log.Debug("Layout cache",
			zap.Int("entries", cache.size()),
			zap.Int64("hits", cache.hits.Load()),
			zap.Int64("misses", cache.misses.Load()))
	}

	if opts.Report != nil {
		opts.Report.StoreData("output.txt", out.Bytes())
		for i, res := range results {
			if res.layout.Block.Blank() {
				continue
			}
			opts.Report.StoreData(fmt.Sprintf("layout-%d.txt", i+1), []byte(res.layout.String()))
		}
	}
	return nil
}

// writeOutput encodes data when necessary. Characters which cannot be
// represented are replaced rather than failing the whole output.
func writeOutput(w io.Writer, data []byte, enc encoding.Encoding) (err error) {
	if enc == nil {
		_, err = w.Write(data)
		return err
	}

	tw := transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
	defer func() {
		err = multierr.Append(err, tw.Close())
	}()

	_, err = tw.Write(data)
	return err
}
