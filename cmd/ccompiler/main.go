package main

import (
	"fmt"
	"os"

	"minicc/pkg/compiler"
	"minicc/pkg/utils"
)

const testSource = `int main(void) {
	return 2;
}
`

func main() {
	src := testSource
	if len(os.Args) > 1 {
		data, err := utils.ReadSource(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = data
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}

	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
}
