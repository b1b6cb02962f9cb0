package main

import (
	"fmt"
	"log"

	"github.com/hupe1980/thomasq"
	"github.com/hupe1980/thomasq/randx"
	"github.com/hupe1980/thomasq/search"
)

func main() {
	fmt.Println("calculating Q[n1+n2]")

	var n1, n2 int

	fmt.Print("n1: ")
	if _, err := fmt.Scan(&n1); err != nil {
		log.Fatal(err)
	}

	fmt.Print("n2: ")
	if _, err := fmt.Scan(&n2); err != nil {
		log.Fatal(err)
	}

	r := thomasq.QAddition(n1, n2)
	if !r.Valid() {
		log.Fatalf("Q[%d+%d] is undefined: %s", n1, n2, r.Status)
	}

	fmt.Printf("Q[%d+%d] = %f\n", n1, n2, r.Q)

	// Find a subtraction of comparable difficulty.
	s := search.New(func(o *search.Options) {
		o.RNG = randx.New(4711)
	})

	cal := s.Subtraction(r.Q-0.25, r.Q+0.25)
	if cal.Valid() {
		fmt.Printf("similar: Q[%d-%d] = %f\n", cal.N1, cal.N2, cal.Q)
	} else {
		fmt.Printf("no comparable subtraction found (%s)\n", cal.Status)
	}
}
