package reflow

// Engine lays out blocks. It keeps no state between calls and is safe for
// concurrent use.
type Engine struct {
	balance Balance
}

// Option configures Engine.
type Option func(*Engine)

// WithBalance replaces DefaultBalance.
func WithBalance(bal Balance) Option {
	return func(e *Engine) {
		e.balance = bal
	}
}

// New returns engine ready to use.
func New(opts ...Option) *Engine {
	e := &Engine{balance: DefaultBalance}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Layout is the result of block processing along with all intermediate
// tables, mostly useful for troubleshooting.
type Layout struct {
	Block  Block
	Lines  []int
	States []State
	Cut    int
	Text   []string
}

// Layout breaks block into lines. Blank block produces a single line
// consisting of its prefix.
func (e *Engine) Layout(b Block) (*Layout, error) {
	l := &Layout{Block: b}
	if b.Blank() {
		l.Text = []string{b.Prefix}
		return l, nil
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	l.Lines = CountLines(b.Tokens, b.Width)
	l.States = Optimize(b.Tokens, l.Lines, b.Width)
	l.Cut = e.balance.Cut(b.Tokens, l.Lines, l.States, b.Width)
	l.Text = Render(b, l.States, l.Cut)
	return l, nil
}

// Format is a shortcut returning only final lines of the block.
func (e *Engine) Format(b Block) ([]string, error) {
	l, err := e.Layout(b)
	if err != nil {
		return nil, err
	}
	return l.Text, nil
}
