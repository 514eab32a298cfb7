/*
File    : lox/cmd/lox/main.go
Package : main

Package main is the thin command-line front-end spec.md §1 treats as
an external collaborator: it only selects a sub-command, reads a
file, drives the core pipeline, and maps error kinds to exit codes —
it owns no language semantics of its own. Its dual-mode shape (a
file-consuming sub-command dispatcher, falling back to an interactive
session) and its colored diagnostics follow the teacher's main/main.go
and repl/repl.go.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lox/config"
	"github.com/akashmaji946/lox/interpreter"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/repl"
	"github.com/akashmaji946/lox/resolver"
	"github.com/akashmaji946/lox/token"
)

var redColor = color.New(color.FgRed)

func main() {
	if len(os.Args) < 2 {
		r := repl.New(config.Load(configPath()), os.Stdout)
		r.Start(os.Stdout)
		return
	}

	command := os.Args[1]
	if command != "tokenize" && command != "parse" && command != "evaluate" && command != "run" {
		fmt.Fprintf(os.Stderr, "Usage: lox [tokenize|parse|evaluate|run] <file>\n")
		os.Exit(1)
	}
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: lox %s <file>\n", command)
		os.Exit(1)
	}

	src, err := os.ReadFile(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file '%s': %v\n", os.Args[2], err)
		os.Exit(1)
	}

	switch command {
	case "tokenize":
		os.Exit(runTokenize(string(src)))
	case "parse":
		os.Exit(runParse(string(src)))
	case "evaluate":
		os.Exit(runEvaluate(string(src)))
	case "run":
		os.Exit(runProgram(string(src)))
	}
}

// configPath resolves which config file the REPL should load: an
// explicit LOX_CONFIG path takes precedence, otherwise config.DiscoverPath
// falls back to ./.loxrc.yaml then $HOME/.loxrc.yaml.
func configPath() string {
	if p := os.Getenv("LOX_CONFIG"); p != "" {
		return p
	}
	return config.DiscoverPath()
}

func runTokenize(src string) int {
	lx := lexer.New(src)
	tokens := lx.Tokenize()
	for _, t := range tokens {
		fmt.Println(t.String())
	}
	fmt.Println(token.New(token.EOF, "").String())
	for _, e := range lx.Errors {
		redColor.Fprintln(os.Stderr, e.Error())
	}
	if len(lx.Errors) > 0 {
		return loxerr.ExitCode(loxerr.KindLex)
	}
	return 0
}

func runParse(src string) int {
	tokens, code := tokenizeOrExit(src)
	if code != 0 {
		return code
	}

	p := parser.New(tokens)
	expr := p.ParseExpression()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return loxerr.ExitCode(loxerr.KindParse)
	}

	fmt.Println(parser.NewPrinter().Print(expr))
	return 0
}

func runEvaluate(src string) int {
	tokens, code := tokenizeOrExit(src)
	if code != 0 {
		return code
	}

	p := parser.New(tokens)
	expr := p.ParseExpression()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return loxerr.ExitCode(loxerr.KindParse)
	}

	interp := interpreter.New(os.Stdout)
	value, err := interp.EvaluateExpression(expr)
	if err != nil {
		redColor.Fprintln(os.Stderr, err.Error())
		return loxerr.ExitCode(loxerr.KindRuntime)
	}
	fmt.Println(interp.Stringify(value))
	return 0
}

func runProgram(src string) int {
	tokens, code := tokenizeOrExit(src)
	if code != 0 {
		return code
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return loxerr.ExitCode(loxerr.KindParse)
	}

	res := resolver.New()
	res.Resolve(stmts)
	if res.HasErrors() {
		for _, e := range res.Errors() {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return loxerr.ExitCode(loxerr.KindResolve)
	}

	interp := interpreter.New(os.Stdout)
	if err := interp.Interpret(stmts); err != nil {
		redColor.Fprintln(os.Stderr, err.Error())
		return loxerr.ExitCode(loxerr.KindRuntime)
	}
	return 0
}

// tokenizeOrExit tokenizes src and maps any lexical error straight to
// its exit code, the way every non-tokenize sub-command must stop
// before handing illegal tokens to the parser.
func tokenizeOrExit(src string) ([]token.Token, int) {
	lx := lexer.New(src)
	tokens := lx.Tokenize()
	if len(lx.Errors) > 0 {
		for _, e := range lx.Errors {
			redColor.Fprintln(os.Stderr, e.Error())
		}
		return nil, loxerr.ExitCode(loxerr.KindLex)
	}
	return tokens, 0
}
