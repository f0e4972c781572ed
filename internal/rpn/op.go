package rpn

import "strconv"

// Code names one of the calculator's operations; the zero value is NoOp.
type Code uint8

// Op is a single parsed operation, only Num codes carry a value.
type Op struct {
	Code Code
	Num  float64
}

const (
	NoOp Code = iota

	// binary arithmetic
	Add
	Sub
	Mul
	Div
	Pow

	// unary math
	Sqrt
	Neg
	Abs
	Ln
	Log
	Lg
	Sin
	Asin
	Cos
	Acos
	Tan
	Atan
	ToDeg
	ToRad

	// whole stack reductions
	Sum
	Prod

	// stack manipulation
	Pop
	Clear
	Swap
	Rotate
	Duplicate

	// literal number
	Num

	codeMax
)

var codeNames = [codeMax]string{
	NoOp:      "noop",
	Add:       "add",
	Sub:       "sub",
	Mul:       "mul",
	Div:       "div",
	Pow:       "pow",
	Sqrt:      "sqrt",
	Neg:       "neg",
	Abs:       "abs",
	Ln:        "ln",
	Log:       "log",
	Lg:        "lg",
	Sin:       "sin",
	Asin:      "asin",
	Cos:       "cos",
	Acos:      "acos",
	Tan:       "tan",
	Atan:      "atan",
	ToDeg:     "deg",
	ToRad:     "rad",
	Sum:       "sum",
	Prod:      "prod",
	Pop:       "pop",
	Clear:     "clear",
	Swap:      "swap",
	Rotate:    "rotate",
	Duplicate: "duplicate",
	Num:       "num",
}

func (code Code) String() string {
	if code < codeMax {
		return codeNames[code]
	}
	return "Code(" + strconv.Itoa(int(code)) + ")"
}

// Binary returns true for codes that combine the top two stack values.
func (code Code) Binary() bool { return Add <= code && code <= Pow }

// Unary returns true for codes that replace the top stack value.
func (code Code) Unary() bool { return Sqrt <= code && code <= ToRad }

// Number returns an Op that pushes n.
func Number(n float64) Op { return Op{Code: Num, Num: n} }

func (op Op) String() string {
	if op.Code == Num {
		return "num(" + strconv.FormatFloat(op.Num, 'g', -1, 64) + ")"
	}
	return op.Code.String()
}
