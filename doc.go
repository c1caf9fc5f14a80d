/*
Package calculator evaluates infix equations over semi-structured complex numbers.

A semi-structured complex number x + y·i + z·p is written as the literal "x,y,z",
where p is the absorbing element that results from dividing by zero. Equations are
space-separated operands and the operators + - * /, without parentheses; * and /
bind tighter than + and -, and equal precedence associates to the left.

# Machines

Two machines share one pipeline (tokenize, convert to postfix, run a stack machine)
and differ only in the division policy:

  - STD is partial. A literal zero divisor aborts the equation with
    domain.ErrDivisionByZero, reported as "ERR".
  - DBZ is total. A zero divisor produces p = (0,0,1) and evaluation continues.

Evaluation is a pure function of the equation text; machines hold no mutable state
and may be shared between goroutines.

# Usage

	std := calculator.NewSTD()
	v, err := std.Evaluate("1,0,0 + 2,0,0 * 3,0,0")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v.Format()) // 7,0,0

	dbz := calculator.NewDBZ()
	prog, err := calculator.Compile("1,0,0 / 0,0,0")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dbz.Run(prog).Format()) // 0,0,1

Compile once and Run many times when the same equation is evaluated by both machines;
the DBZ Run method returns no error, which keeps the totality of the policy visible
in its signature.
*/
package calculator
