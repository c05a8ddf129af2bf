package body

import (
	"strings"
	"unicode"

	"github.com/scribal-format/go-scribal/debug"
)

// PushNewline appends a newline token. Newlines are recognized eagerly
// by the scanner and never pass through the string accumulator.
func (b *Body) PushNewline() {
	b.Push(Token{Text: "\n", Newline: true})
}

// DumpLeadingWS flushes acc as a leading-whitespace token and empties
// it. The token is appended even when the run is empty: its position in
// the stream, not its content, marks the leading edge of a body part.
func (b *Body) DumpLeadingWS(acc *StringAcc) {
	b.Push(Token{Text: acc.Finalize(), LeadingWS: true})
	acc.reset()
}

// DumpString flushes acc, splitting the maximal whitespace suffix of the
// run into its own trailing-whitespace token. Whitespace elsewhere in
// the run stays in the plain token; only the suffix abuts a structural
// boundary. An empty run appends nothing. acc is empty on return.
func (b *Body) DumpString(acc *StringAcc) {
	s := acc.Finalize()
	acc.reset()
	if s == "" {
		return
	}
	main := strings.TrimRightFunc(s, unicode.IsSpace)
	if main != "" {
		b.Push(Token{Text: main})
	}
	if ws := s[len(main):]; ws != "" {
		b.Push(Token{Text: ws, TrailingWS: true})
	}
}

// DumpForm folds a non-character scan result into the stream.
//
// When leadingWS is set, the current run is whitespace preceding the
// form; it is flushed as a leading-whitespace token first, exactly once.
// A string form merges into the current run rather than becoming a token
// of its own. Anything else flushes the run verbatim (no trailing
// whitespace split: the text abuts a form boundary) and then appends the
// form, flattened when it is a splice. acc is empty on return.
func (b *Body) DumpForm(acc *StringAcc, f Form, leadingWS bool) {
	if leadingWS {
		b.DumpLeadingWS(acc)
		b.DumpForm(acc, f, false)
		return
	}
	if !f.splice {
		if s, ok := f.value.(string); ok {
			for _, c := range s {
				acc.Push(c)
			}
			return
		}
	}
	if s := acc.Finalize(); s != "" {
		b.Push(Token{Text: s})
	}
	acc.reset()
	if f.splice {
		for _, t := range f.toks {
			b.Push(t)
		}
	} else {
		b.Push(Token{Value: f.value})
	}
	if debug.Merge() {
		debug.LogAny(b.toks)
	}
}
