package compiler

import (
	"strings"
	"testing"
)

// benchSource is a small program repeated to give the tokenizer some work.
const benchSource = `
int main(void) {
	return 2;
}

void helper(void) {
	return;
}
`

func BenchmarkLexSimple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(benchSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexLarge(b *testing.B) {
	src := strings.Repeat(benchSource, 200)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(src); err != nil {
			b.Fatal(err)
		}
	}
}
