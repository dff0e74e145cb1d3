package thd_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-constmath/measure/thd"
)

func ExampleAnalyzeSine() {
	sine := func(x float64) float64 { return math.Sin(x) + 0.02*math.Sin(2*x) }

	res, err := thd.AnalyzeSine(sine, thd.Config{Size: 4096, Cycles: 64})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("THD: %.2f%%\n", res.THD*100)
	fmt.Printf("SFDR: %.2f dB\n", res.SFDR_dB)
	// Output:
	// THD: 2.00%
	// SFDR: 33.98 dB
}
