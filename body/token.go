package body

import "fmt"

// Token is one classified unit of a body region. Its payload is either
// literal text (Value nil) or an opaque embedded form (Value non-nil).
// At most one of the three flags is set for a token whose text is not
// exactly "\n"; a form token has none. The flags are computed at
// accumulation time, when the scanner still knows where the run sat
// relative to its boundaries.
type Token struct {
	Text  string
	Value any

	Newline    bool
	LeadingWS  bool
	TrailingWS bool
}

func TextToken(s string) Token {
	return Token{Text: s}
}

// FormToken wraps an embedded parsed form. v must be non-nil.
func FormToken(v any) Token {
	return Token{Value: v}
}

// IsForm reports whether the token wraps an embedded parsed form rather
// than literal text.
func (t Token) IsForm() bool {
	return t.Value != nil
}

func (t Token) Info() string {
	switch {
	case t.IsForm():
		return fmt.Sprintf("form %v", t.Value)
	case t.Newline:
		return "newline"
	case t.LeadingWS:
		return fmt.Sprintf("leading-ws %q", t.Text)
	case t.TrailingWS:
		return fmt.Sprintf("trailing-ws %q", t.Text)
	default:
		return fmt.Sprintf("text %q", t.Text)
	}
}

func (t Token) String() string {
	if t.IsForm() {
		return fmt.Sprintf("%v", t.Value)
	}
	return t.Text
}
