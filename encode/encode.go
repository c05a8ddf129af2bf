// Package encode renders finalized body token streams for inspection.
package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/scribal-format/go-scribal/body"
	"github.com/scribal-format/go-scribal/debug"
)

type Class int

const (
	TextClass Class = iota
	NewlineClass
	LeadingWSClass
	TrailingWSClass
	FormClass
)

func (c Class) String() string {
	return map[Class]string{
		TextClass:       "text",
		NewlineClass:    "nl",
		LeadingWSClass:  "lws",
		TrailingWSClass: "tws",
		FormClass:       "form",
	}[c]
}

// ClassOf reports the rendering class of a token, from its flags.
func ClassOf(t body.Token) Class {
	switch {
	case t.IsForm():
		return FormClass
	case t.Newline:
		return NewlineClass
	case t.LeadingWS:
		return LeadingWSClass
	case t.TrailingWS:
		return TrailingWSClass
	default:
		return TextClass
	}
}

type EncodeOption func(*encOpts)

type encOpts struct {
	colors *Colors
}

func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) {
		o.colors = c
	}
}

// Encode writes one line per token: the token class, then the quoted
// payload.
func Encode(toks []body.Token, w io.Writer, opts ...EncodeOption) error {
	o := &encOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if debug.Encode() {
		debug.LogAny(toks)
	}
	colors := o.colors
	if colors == nil {
		colors = &Colors{Default: colorDefault}
	}
	for i := range toks {
		t := &toks[i]
		cls := ClassOf(*t)
		line := fmt.Sprintf("%-4s %s", cls, payload(t))
		if _, err := fmt.Fprintln(w, colors.Get(cls)(line)); err != nil {
			return err
		}
	}
	return nil
}

func payload(t *body.Token) string {
	if t.IsForm() {
		return fmt.Sprintf("%v", t.Value)
	}
	return strconv.Quote(t.Text)
}
