// Package compiler provides the lexical front end for a small C subset:
// the keywords int, void and return, identifiers, decimal constants and
// the punctuation ( ) { } ;.
//
// Pipeline: C source → Lex → tokens (parse and codegen are not implemented yet)
package compiler
