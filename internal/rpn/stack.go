package rpn

import (
	"strconv"
	"strings"

	"github.com/gammazero/deque"
)

// Stack holds the calculator's operands; the back of the deque is the top.
// The zero value is an empty stack.
type Stack struct {
	q deque.Deque[float64]
}

// NewStack returns a stack holding values, given bottom to top.
func NewStack(values ...float64) *Stack {
	var st Stack
	for _, v := range values {
		st.Push(v)
	}
	return &st
}

func (st *Stack) Len() int             { return st.q.Len() }
func (st *Stack) Push(v float64)       { st.q.PushBack(v) }
func (st *Stack) PushBottom(v float64) { st.q.PushFront(v) }
func (st *Stack) Clear()               { st.q.Clear() }

// At returns the i-th value counting up from the bottom.
func (st *Stack) At(i int) float64 { return st.q.At(i) }

// Pop removes and returns the top value, if any.
func (st *Stack) Pop() (float64, bool) {
	if st.q.Len() == 0 {
		return 0, false
	}
	return st.q.PopBack(), true
}

// Top returns the top value without removing it.
func (st *Stack) Top() (float64, bool) {
	if st.q.Len() == 0 {
		return 0, false
	}
	return st.q.Back(), true
}

// Values copies out the stack bottom to top.
func (st *Stack) Values() []float64 {
	values := make([]float64, st.q.Len())
	for i := range values {
		values[i] = st.q.At(i)
	}
	return values
}

// String formats the stack bottom to top, rounding each value to 2
// decimal places; the stored values keep full precision.
func (st *Stack) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < st.q.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(st.q.At(i), 'f', 2, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
