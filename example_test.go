package calculator_test

import (
	"errors"
	"fmt"
	"log"

	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/domain"
)

// ExampleSTD_Evaluate shows the partial machine aborting on a zero divisor.
func ExampleSTD_Evaluate() {
	std := calculator.NewSTD()

	v, err := std.Evaluate("1,0,0 + 2,0,0 * 3,0,0")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v.Format())

	_, err = std.Evaluate("1,0,0 / 0,0,0")
	fmt.Println(errors.Is(err, domain.ErrDivisionByZero), calculator.FormatResult(v, err))
	// Output:
	// 7,0,0
	// true ERR
}

// ExampleDBZ_Run compiles once and runs the total machine, which cannot fail.
func ExampleDBZ_Run() {
	prog, err := calculator.Compile("1,0,0 / 0,0,0 + 2,1,0")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(prog)
	fmt.Println(calculator.NewDBZ().Run(prog).Format())
	// Output:
	// 1,0,0 0,0,0 / 2,1,0 +
	// 2,1,1
}
