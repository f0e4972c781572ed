package rpn

import "math"

// Eval applies op to st in place. It never fails: operations that need
// more operands than st holds leave it untouched, and floating point
// domain errors simply produce NaN or ±Inf.
func Eval(st *Stack, op Op) {
	switch code := op.Code; {
	case code.Binary():
		binop(st, binops[code])
	case code.Unary():
		unop(st, unops[code])

	case code == Sum:
		fold(st, 0, func(acc, x float64) float64 { return acc + x })
	case code == Prod:
		fold(st, 1, func(acc, x float64) float64 { return acc * x })

	case code == Pop:
		st.Pop()
	case code == Clear:
		st.Clear()
	case code == Swap:
		swap(st)
	case code == Rotate:
		rotate(st)
	case code == Duplicate:
		duplicate(st)

	case code == Num:
		st.Push(op.Num)
	}
}

var binops = map[Code]func(a, b float64) float64{
	Add: func(a, b float64) float64 { return a + b },
	Sub: func(a, b float64) float64 { return a - b },
	Mul: func(a, b float64) float64 { return a * b },
	Div: func(a, b float64) float64 { return a / b },
	Pow: math.Pow,
}

var unops = map[Code]func(float64) float64{
	Sqrt:  math.Sqrt,
	Neg:   func(a float64) float64 { return -a },
	Abs:   math.Abs,
	Ln:    math.Log,
	Log:   math.Log10,
	Lg:    math.Log2,
	Sin:   math.Sin,
	Asin:  math.Asin,
	Cos:   math.Cos,
	Acos:  math.Acos,
	Tan:   math.Tan,
	Atan:  math.Atan,
	ToDeg: func(a float64) float64 { return a * (180 / math.Pi) },
	ToRad: func(a float64) float64 { return a * (math.Pi / 180) },
}

// binop pops b then a and pushes f(a, b): the most recently pushed value
// is the right hand operand, so "2 1 -" is 2-1.
func binop(st *Stack, f func(a, b float64) float64) {
	if st.Len() < 2 {
		return
	}
	b, _ := st.Pop()
	a, _ := st.Pop()
	st.Push(f(a, b))
}

func unop(st *Stack, f func(float64) float64) {
	if a, ok := st.Pop(); ok {
		st.Push(f(a))
	}
}

// fold reduces the whole stack bottom to top, starting from the identity
// value, and replaces it with the result; an empty stack yields identity.
func fold(st *Stack, identity float64, f func(acc, x float64) float64) {
	acc := identity
	for i := 0; i < st.Len(); i++ {
		acc = f(acc, st.At(i))
	}
	st.Clear()
	st.Push(acc)
}

func swap(st *Stack) {
	if st.Len() < 2 {
		return
	}
	b, _ := st.Pop()
	a, _ := st.Pop()
	st.Push(b)
	st.Push(a)
}

// rotate moves only the top value to the bottom.
func rotate(st *Stack) {
	if v, ok := st.Pop(); ok {
		st.PushBottom(v)
	}
}

func duplicate(st *Stack) {
	if v, ok := st.Top(); ok {
		st.Push(v)
	}
}
