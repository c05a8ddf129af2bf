package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/scribal-format/go-scribal/body"
	"github.com/scribal-format/go-scribal/debug"
	"github.com/scribal-format/go-scribal/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cfg.MainConfig, cc.Out, cc.In)
	}
	return dumpFiles(cfg.MainConfig, cc.Out, args)
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.Color = true
	if len(args) == 0 {
		return dumpReader(cfg.MainConfig, cc.Out, cc.In)
	}
	return dumpFiles(cfg.MainConfig, cc.Out, args)
}

func dumpFiles(cfg *MainConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := dumpFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func dumpFile(cfg *MainConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := dumpReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	toks := scanBody(string(in))
	if debug.Scan() {
		body.PrintTokens(toks, "scan")
	}
	if cfg.Y {
		return dumpYAML(w, toks)
	}
	return encode.Encode(toks, w, cfg.encOpts(w)...)
}

// scanBody feeds raw text through the merge engine as a single body
// region: newlines become newline tokens, everything else accumulates
// into runs flushed at each line end.
func scanBody(in string) []body.Token {
	var (
		b   = body.NewBody()
		acc = body.NewStringAcc()
	)
	for _, c := range in {
		if c == '\n' {
			b.DumpString(acc)
			b.PushNewline()
			continue
		}
		acc.Push(c)
	}
	b.DumpString(acc)
	return b.Finalize()
}

type yamlToken struct {
	Class string `yaml:"class"`
	Text  string `yaml:"text,omitempty"`
	Form  any    `yaml:"form,omitempty"`
}

func dumpYAML(w io.Writer, toks []body.Token) error {
	ys := make([]yamlToken, len(toks))
	for i, t := range toks {
		ys[i] = yamlToken{Class: encode.ClassOf(t).String()}
		if t.IsForm() {
			ys[i].Form = t.Value
		} else {
			ys[i].Text = t.Text
		}
	}
	d, err := yaml.Marshal(ys)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	_, err = w.Write(d)
	return err
}
