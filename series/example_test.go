package series_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cran/CptNonPar/series"
)

// ExampleFromMatrix adapts a gonum matrix (rows = observations) into a
// Series the detector can consume.
func ExampleFromMatrix() {
	m := mat.NewDense(3, 2, []float64{
		1.5, 2,
		0.5, 4,
		3, 1,
	})

	x, err := series.FromMatrix(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, err := x.At(1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d observations of dimension %d\n", x.Len(), x.Dim())
	fmt.Printf("x[1][1] = %.1f\n", v)
	// Output:
	// 3 observations of dimension 2
	// x[1][1] = 4.0
}
