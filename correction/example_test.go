package correction_test

import (
	"context"
	"fmt"

	"github.com/isocorr-go/isocorr/correction"
	"github.com/isocorr-go/isocorr/element"
)

func ExampleCorrect() {
	table, err := element.NewTable(map[element.Symbol]element.Abundances{
		"C": {0.9893, 0.0107},
		"H": {1.0},
		"O": {1.0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tracer := correction.TracerConfig{
		Element:            "C",
		Purity:             []float64{0, 1},
		ExcludeTracerNatab: true,
	}

	result, err := correction.Correct(context.Background(), table, "C3H4O3", "", []float64{1, 0, 0, 0}, tracer)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.0f %.0f %.0f %.0f\n", result.Distribution[0], result.Distribution[1], result.Distribution[2], result.Distribution[3])
	// Output: 1 0 0 0
}
