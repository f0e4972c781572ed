package main

import (
	"bufio"
	"io"
	"strings"
)

// CalcOption configures a Calc created by New.
type CalcOption interface{ apply(calc *Calc) }

var defaultOptions = CalcOptions(
	withInput(strings.NewReader("")),
	withOutput(io.Discard),
	withPrompt("> "),
)

// CalcOptions combines any number of options into one, applied in order.
func CalcOptions(opts ...CalcOption) CalcOption {
	var all calcOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case calcOptions:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type calcOptions []CalcOption

func (opts calcOptions) apply(calc *Calc) {
	for _, opt := range opts {
		opt.apply(calc)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(calc *Calc) {
	calc.logfn = logfn
}

type inputOption struct{ io.Reader }
type lineReaderOption struct{ LineReader }
type outputOption struct{ io.Writer }
type promptOption string
type bannerOption string

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withLineReader(lr LineReader) lineReaderOption { return lineReaderOption{lr} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withPrompt(prompt string) promptOption         { return promptOption(prompt) }
func withBanner(banner string) bannerOption         { return bannerOption(banner) }

func (i inputOption) apply(calc *Calc) {
	if br, is := i.Reader.(*bufio.Reader); is {
		calc.in = br
	} else {
		calc.in = bufio.NewReader(i.Reader)
	}
	calc.lines = nil
}

func (lr lineReaderOption) apply(calc *Calc) {
	calc.lines = lr.LineReader
	if cl, ok := lr.LineReader.(io.Closer); ok {
		calc.closers = append(calc.closers, cl)
	}
}

func (o outputOption) apply(calc *Calc) {
	// options are applied before Run, so a replaced writer never holds
	// session output and there is nothing to flush or lose
	if bw, is := o.Writer.(*bufio.Writer); is {
		calc.out = bw
	} else {
		calc.out = bufio.NewWriter(o.Writer)
	}
}

func (prompt promptOption) apply(calc *Calc) { calc.prompt = string(prompt) }
func (banner bannerOption) apply(calc *Calc) { calc.banner = string(banner) }
