package rpn

import (
	"fmt"
	"math"
)

// Phi is the golden ratio, kept as the fixed literal the calculator has
// always used rather than (1+√5)/2.
const Phi = 1.61803398875

type command uint8

const (
	cmdNone command = iota
	cmdHelp
	cmdQuit
)

// aliasGroups lists every lower case spelling the parser accepts; help.go
// must be kept in sync with it.
var aliasGroups = []struct {
	op    Op
	names []string
}{
	{Op{Code: Add}, []string{"+", "add"}},
	{Op{Code: Sub}, []string{"-", "sub", "subtract"}},
	{Op{Code: Mul}, []string{"*", "mul", "multiply"}},
	{Op{Code: Div}, []string{"/", "div", "divide"}},
	{Op{Code: Pow}, []string{"^", "pow", "power"}},

	{Op{Code: Abs}, []string{"abs", "absolute"}},
	{Op{Code: Sqrt}, []string{"sqrt", "root"}},
	{Op{Code: Neg}, []string{"neg", "negate", "~"}},
	{Op{Code: Ln}, []string{"ln", "loge"}},
	{Op{Code: Log}, []string{"log", "log10"}},
	{Op{Code: Lg}, []string{"lg", "log2"}},
	{Op{Code: Sin}, []string{"sin"}},
	{Op{Code: Asin}, []string{"asin", "sin^-1"}},
	{Op{Code: Cos}, []string{"cos"}},
	{Op{Code: Acos}, []string{"acos", "cos^-1"}},
	{Op{Code: Tan}, []string{"tan"}},
	{Op{Code: Atan}, []string{"atan", "tan^-1"}},
	{Op{Code: ToDeg}, []string{"deg", "to deg"}},
	{Op{Code: ToRad}, []string{"rad", "to rad"}},

	{Number(math.Pi), []string{"pi", "π"}},
	{Number(math.E), []string{"e"}},
	{Number(Phi), []string{"phi", "φ", "ϕ"}},

	{Op{Code: Sum}, []string{"sum"}},
	{Op{Code: Prod}, []string{"prod"}},
	{Op{Code: Pop}, []string{"pop"}},
	{Op{Code: Clear}, []string{"clear", "cls"}},
	{Op{Code: Swap}, []string{"swap"}},
	{Op{Code: Rotate}, []string{"rotate", "rot"}},
	{Op{Code: Duplicate}, []string{"copy", "clone", "duplicate"}},
}

var commandGroups = []struct {
	cmd   command
	names []string
}{
	{cmdHelp, []string{"help", "?"}},
	{cmdQuit, []string{"quit", "q", "end"}},
}

var (
	aliases  map[string]Op
	commands map[string]command
)

func init() {
	aliases = make(map[string]Op)
	commands = make(map[string]command)
	for _, group := range aliasGroups {
		for _, name := range group.names {
			if prior, defined := aliases[name]; defined {
				panic(fmt.Sprintf("rpn: alias %q denotes both %v and %v", name, prior, group.op))
			}
			aliases[name] = group.op
		}
	}
	for _, group := range commandGroups {
		for _, name := range group.names {
			if prior, defined := aliases[name]; defined {
				panic(fmt.Sprintf("rpn: command %q already denotes %v", name, prior))
			}
			commands[name] = group.cmd
		}
	}
}

// Lookup resolves an already trimmed and lower cased alias.
func Lookup(alias string) (Op, bool) {
	op, ok := aliases[alias]
	return op, ok
}
