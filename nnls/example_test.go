package nnls_test

import (
	"context"
	"fmt"

	"github.com/isocorr-go/isocorr/matrix"
	"github.com/isocorr-go/isocorr/nnls"
)

func ExampleSolve() {
	a, _ := matrix.NewDense(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(1, 1, 1)

	x, _, err := nnls.Solve(context.Background(), a, []float64{0.25, 0.75})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.2f %.2f\n", x[0], x[1])
	// Output: 0.25 0.75
}
