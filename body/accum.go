package body

// Body is the append-only sequence of tokens produced for one body
// region, in document order.
type Body struct {
	toks []Token
}

func NewBody() *Body {
	return &Body{}
}

func (b *Body) Push(t Token) {
	b.toks = append(b.toks, t)
}

func (b *Body) Len() int {
	return len(b.toks)
}

// Finalize hands the token sequence to postprocessing. Ownership of the
// sequence transfers to the caller.
func (b *Body) Finalize() []Token {
	return b.toks
}
