package notate_test

import (
	"fmt"

	"github.com/notatehq/notate"
	"github.com/notatehq/notate/pkg/symbol"
)

func Example() {
	out, err := notate.Eval(symbol.Unicode, "LiAlSi$sub(2)O$sub(6)$sup(+)")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: LiAlSi₂O₆⁺
}

func ExampleEvalAll() {
	r, err := notate.EvalAll("$greek(alpha) decay")
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Plain())
	fmt.Println(r.Unicode())
	fmt.Println(r.HTML())
	fmt.Println(r.LaTeX())
	// Output:
	// alpha decay
	// α decay
	// &alpha; decay
	// \alpha\ decay
}

func ExampleEval_strictErrors() {
	eng, _ := notate.New()
	_, err := eng.ParseStrict(symbol.Unicode, "$greke(alpha)")
	fmt.Println(err)
	// Output: parse error at offset 6: encoder call "greke" not found
}
