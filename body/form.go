package body

// Form is the nested-form input to [Body.DumpForm]: either one opaque
// value produced by the surrounding reader's grammar, or a sequence of
// already-classified tokens to splice into the parent stream.
type Form struct {
	splice bool
	toks   []Token
	value  any
}

// Single wraps one reader result. If v is a string, DumpForm merges it
// into the current text run instead of boxing it as a token; v must be
// non-nil.
func Single(v any) Form {
	return Form{value: v}
}

// Splice marks a sequence of body parts for flattening: DumpForm appends
// each token as its own sibling instead of one wrapping token.
func Splice(toks []Token) Form {
	return Form{splice: true, toks: toks}
}
