package convert

import (
	"encoding/binary"
	"slices"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/zeebo/xxh3"

	"varfmt/reflow"
)

// layoutCache remembers layouts of already seen blocks, so repeated
// paragraphs like mail signatures are laid out once. Layouts are never
// modified after creation and are shared between readers.
type layoutCache struct {
	m      *xsync.Map[uint64, *reflow.Layout]
	hits   atomic.Int64
	misses atomic.Int64
}

func newLayoutCache() *layoutCache {
	return &layoutCache{m: xsync.NewMap[uint64, *reflow.Layout]()}
}

func blockKey(b reflow.Block) uint64 {
	var w [8]byte
	binary.LittleEndian.PutUint64(w[:], uint64(b.Width))

	h := xxh3.New()
	_, _ = h.Write(w[:])
	_, _ = h.WriteString(b.Prefix)
	for _, tok := range b.Tokens {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(tok)
	}
	return h.Sum64()
}

func sameBlock(a, b reflow.Block) bool {
	return a.Width == b.Width && a.Prefix == b.Prefix && slices.Equal(a.Tokens, b.Tokens)
}

// layout returns cached layout for the block or computes and stores a new one.
// Hash collisions are detected by comparing blocks and are never served.
func (c *layoutCache) layout(e *reflow.Engine, b reflow.Block) (*reflow.Layout, error) {
	if c == nil {
		return e.Layout(b)
	}

	key := blockKey(b)
	if l, ok := c.m.Load(key); ok && sameBlock(l.Block, b) {
		c.hits.Add(1)
		return l, nil
	}
	c.misses.Add(1)

	l, err := e.Layout(b)
	if err != nil {
		return nil, err
	}
	c.m.Store(key, l)
	return l, nil
}

func (c *layoutCache) size() int {
	if c == nil {
		return 0
	}
	return c.m.Size()
}
