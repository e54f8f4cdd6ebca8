package sequence

import "fmt"

// ExampleGenerate shows the stored terms for a small limit. The second
// leading 1 is not stored.
func ExampleGenerate() {
	seq := Generate(10)
	fmt.Println(seq.Values())
	// Output:
	// [1 2 3 5 8]
}

// ExampleFormatLastN renders the default output line.
func ExampleFormatLastN() {
	fmt.Println(FormatLastN(Generate(DefaultLimit), DefaultCount))
	// Output:
	// 987 610 377 233 144 89 55 34 21 13 8 5 3 2 1
}
