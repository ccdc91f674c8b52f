package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"minicc/pkg/compiler"
	"minicc/pkg/utils"
)

type options struct {
	input   string
	lex     bool
	parse   bool
	codegen bool
}

var errUsage = errors.New("expected exactly one input file")

// parseArgs accepts flags before or after the input file.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("minicc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.lex, "lex", false, "run lexical analysis and print the tokens")
	fs.BoolVar(&opts.parse, "parse", false, "run the parser (not implemented)")
	fs.BoolVar(&opts.codegen, "codegen", false, "run code generation (not implemented)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: minicc [--lex] [--parse] [--codegen] FILE")
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return opts, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	if len(positional) != 1 {
		fs.Usage()
		return opts, errUsage
	}
	opts.input = positional[0]
	return opts, nil
}

// run executes the driver and returns the process exit status. Read and
// lexical errors are reported and the remaining stages still run.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	fmt.Fprintf(stdout, "Input file: %s\n", opts.input)

	if opts.lex {
		fmt.Fprintln(stdout, "Performing lexical analysis...")
		lexFile(opts.input, stdout, stderr)
	}

	if opts.parse {
		fmt.Fprintln(stdout, "Parsing enabled")
	}

	if opts.codegen {
		fmt.Fprintln(stdout, "Code generation enabled")
	}

	return 0
}

func lexFile(path string, stdout, stderr io.Writer) {
	src, err := utils.ReadSource(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %v\n", err)
		return
	}

	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintf(stderr, "Lexical error: %v\n", err)
		return
	}

	fmt.Fprintf(stdout, "Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Fprintln(stdout, " ", tok)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
