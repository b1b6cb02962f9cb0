package thomasq_test

import (
	"fmt"

	"github.com/hupe1980/thomasq"
)

func ExampleQAddition() {
	r := thomasq.QAddition(11, 1)
	fmt.Printf("%.5f\n", r.Q)
	// Output: 0.60206
}

func ExampleQSubtraction() {
	r := thomasq.QSubtraction(11, 2)
	fmt.Printf("%.5f\n", r.Q)
	// Output: 1.62325
}

func ExampleQMultiplication() {
	r := thomasq.QMultiplication(1, 5)
	fmt.Println(r.Status)
	// Output: invalid-input
}
