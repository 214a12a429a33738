//go:build ignore

// Demo program, excluded from the reactant package build; run it with
// `go run main.go`.
package main

import (
	"fmt"

	reactant "github.com/antlr-labs/reactant"
)

func main() {
	owner := reactant.NewOwner()

	owner.Run(func() error {
		a := reactant.NewSignal(1)
		b := reactant.NewSignal(2)

		sum := reactant.NewComputed(func() int {
			result := a.Read() + b.Read()
			fmt.Println("  [COMPUTED] sum:", result)
			return result
		})

		reactant.NewEffect(func() {
			fmt.Println("  [EFFECT] sum is:", sum.Read())
		})

		fmt.Println("\nUpdating both a and b in a batch...")
		reactant.NewBatch(func() {
			a.Write(10)
			b.Write(20)
		})

		fmt.Println("\nsum recomputes once per flush, not once per write:", sum.Read())
		return nil
	})

	owner.Dispose()
}
