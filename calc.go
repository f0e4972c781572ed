package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcorbin/rpncalc/internal/rpn"
)

// Calc is an interactive RPN calculator session: it reads one line at a
// time, evaluates it against its stack, and prints the stack back.
type Calc struct {
	ioCore
	logging

	prompt string
	banner string

	// The stack is created empty with the session and only ever touched by
	// the loop below, one line at a time.
	stack  rpn.Stack
	parser rpn.Parser
}

func (calc *Calc) run(ctx context.Context) error {
	calc.parser.Out = calc.out
	if calc.banner != "" {
		calc.writeString(calc.banner)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		calc.step(calc.readLine())
	}
}

// step runs one parse, evaluate, display cycle.
func (calc *Calc) step(line string) {
	calc.logf("<", "read %q", strings.TrimRight(line, "\r\n"))

	op := calc.parser.Parse(line)
	calc.haltif(calc.parser.Err())

	rpn.Eval(&calc.stack, op)
	calc.logf(">", "%v => %v", op, calc.stack.Values())

	if calc.stack.Len() > 0 {
		calc.writeString("Stack: ")
		calc.writeString(calc.stack.String())
		calc.writeString("\n")
	}
}

func (calc *Calc) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if calc.out != nil {
			if ferr := calc.out.Flush(); ferr != nil && (err == nil || isEOF(err)) {
				err = ferr
			}
		}
	}()

	if err == nil || isEOF(err) {
		calc.logf("#", "halt")
	} else {
		calc.logf("#", "halt error: %v", err)
	}
	panic(haltError{err})
}

func (calc *Calc) haltif(err error) {
	if err != nil {
		calc.halt(err)
	}
}

// haltError carries why the loop stopped out through Run; a nil or io.EOF
// err is a normal end of input.
type haltError struct{ err error }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
