/* Package main: rpncalc, an interactive Reverse Polish Notation calculator.

Each line of input is one token: a number, a named constant (pi, e, phi),
an operator (+ - * / ^ and the named math functions), a stack command
(sum, prod, pop, clear, swap, rotate, duplicate) or help. After each line
the whole stack is printed bottom to top, each value rounded to 2 decimal
places:

	> 2
	Stack: [2.00]
	> 1
	Stack: [2.00, 1.00]
	> -
	Stack: [1.00]

Operators that find too few operands on the stack do nothing at all, and
floating point domain errors simply yield NaN or ±Inf. The session runs
until its input ends or it is interrupted; the quit command only explains
this.

The calculator core lives in internal/rpn; this package wires it to the
console.
*/
package main
