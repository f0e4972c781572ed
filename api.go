package main

import (
	"context"
	"io"
)

// New creates a calculator session with an empty stack. By default it reads
// nothing, discards its output and prompts with "> ".
func New(opts ...CalcOption) *Calc {
	var calc Calc
	defaultOptions.apply(&calc)
	CalcOptions(opts...).apply(&calc)
	return &calc
}

// Run reads, evaluates and prints lines until input ends, returning nil
// then. It returns ctx.Err() if ctx is done between lines, and any other
// input or output error as soon as it occurs.
func (calc *Calc) Run(ctx context.Context) (rerr error) {
	defer func() {
		if e := recover(); e != nil {
			halt, ok := e.(haltError)
			if !ok {
				panic(e)
			}
			rerr = halt.err
		}
		if isEOF(rerr) {
			rerr = nil
		}
	}()
	return calc.run(ctx)
}

func WithInput(r io.Reader) CalcOption        { return withInput(r) }
func WithLineReader(lr LineReader) CalcOption { return withLineReader(lr) }
func WithOutput(w io.Writer) CalcOption       { return withOutput(w) }
func WithPrompt(prompt string) CalcOption     { return withPrompt(prompt) }
func WithBanner(banner string) CalcOption     { return withBanner(banner) }

func WithLogf(logfn func(mess string, args ...interface{})) CalcOption { return withLogfn(logfn) }
