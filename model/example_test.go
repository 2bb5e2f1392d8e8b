package model_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/model"
)

// ExampleLoad reads a 2-1 model, predicts once and writes it back.
func ExampleLoad() {
	src := `2 3
2 identity
1 sigmoid
2
0 2 1
1 2 -1
1
2 0
`
	n, err := model.Load(strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	n.Eval()
	out, _ := n.Predict(dataset.Example{Features: []float64{2, 2}})
	fmt.Println("p =", out[0])

	_ = model.Save(os.Stdout, n)
	// Output:
	// p = 0.5
	// 2 3
	// 2 identity
	// 1 sigmoid
	// 2
	// 0 2 1
	// 1 2 -1
	// 3
	// 0 0
	// 1 0
	// 2 0
}
