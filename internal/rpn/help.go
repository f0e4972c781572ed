package rpn

// helpText is written by hand, new aliases in vocab.go need a line here.
const helpText = `List of available commands:
help, ? -- print this help
quit, q, end -- explains how to end the session
<number> -- pushes a number onto the stack (e.g. 2, -1.5, 6.02e23)
pi, π -- pushes π onto the stack
e -- pushes e onto the stack
phi, φ, ϕ -- pushes the golden ratio onto the stack
+, add -- adds the top two numbers
-, sub, subtract -- subtracts the top number from the one below it
*, mul, multiply -- multiplies the top two numbers
/, div, divide -- divides the number below the top by the top number
^, pow, power -- raises the number below the top to the power of the top
sqrt, root -- takes the square root of the top number
neg, negate, ~ -- negates the top number
abs, absolute -- makes the top number positive
ln, loge -- applies the natural log to the top number
log, log10 -- applies the base-10 log to the top number
lg, log2 -- applies the base-2 log to the top number
sin -- takes the sine of the top number (in radians)
cos -- takes the cosine of the top number (in radians)
tan -- takes the tangent of the top number (in radians)
asin, sin^-1 -- takes the inverse sine of the top number
acos, cos^-1 -- takes the inverse cosine of the top number
atan, tan^-1 -- takes the inverse tangent of the top number
deg, to deg -- converts the top number from radians to degrees
rad, to rad -- converts the top number from degrees to radians
sum -- adds the entire stack together
prod -- multiplies the entire stack together
pop -- removes the top number
clear, cls -- clears the stack
swap -- swaps the two top numbers
rotate, rot -- moves the top number to the bottom of the stack
copy, clone, duplicate -- duplicates the top number
`
