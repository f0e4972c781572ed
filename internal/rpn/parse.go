package rpn

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parser maps input lines to operations. Anything it has to say to the
// user (diagnostics, help, the quit hint) goes to Out.
type Parser struct {
	Out io.Writer

	err error
}

// Parse returns the operation denoted by line; it never fails, input that
// means nothing yields NoOp after a diagnostic is written to Out.
func (p *Parser) Parse(line string) Op {
	text := strings.ToLower(strings.TrimSpace(line))

	if op, ok := Lookup(text); ok {
		return op
	}

	switch commands[text] {
	case cmdHelp:
		p.write(helpText)
		return Op{}
	case cmdQuit:
		p.write(quitHint)
		return Op{}
	}

	if n, ok := parseNumber(text); ok {
		return Number(n)
	}

	p.printf("Error! Couldn't parse %q\n", strings.TrimSpace(line))
	return Op{}
}

// Err returns the first error encountered while writing to Out.
func (p *Parser) Err() error { return p.err }

const quitHint = "To quit, press ctrl+c (or ctrl+d to end input)\n"

// parseNumber accepts plain decimal literals: an optional sign, digits with
// an optional fraction and exponent, or inf/nan. Go's own literal extensions
// (digit separators, hex mantissas) are not numbers here.
func parseNumber(text string) (float64, bool) {
	if strings.ContainsRune(text, '_') {
		return 0, false
	}
	digits := text
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return n, true
	}
	// out of range literals still carry their correctly rounded value (±Inf or ±0)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return n, true
	}
	return 0, false
}

func (p *Parser) write(s string) {
	if p.err == nil && p.Out != nil {
		_, p.err = io.WriteString(p.Out, s)
	}
}

func (p *Parser) printf(mess string, args ...interface{}) {
	if p.err == nil && p.Out != nil {
		_, p.err = fmt.Fprintf(p.Out, mess, args...)
	}
}
