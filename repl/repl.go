/*
File    : lox/repl/repl.go
Package : repl

Package repl implements the interactive Read-Eval-Print Loop, grounded
on the teacher's repl.Repl: the same readline+color banner/prompt
shape, generalized from a single-shot parse-and-evaluate per line to
lox's four-stage pipeline (lex, parse, resolve, interpret), and from
the teacher's eval.Evaluator (recreated fresh each time the caller
wants, persisted across the session by repl.go's closure over it) to
one interpreter.Interpreter instance kept alive for the whole session
so variable and function definitions persist across lines exactly as
the teacher's single evaluator does across REPL input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox/config"
	"github.com/akashmaji946/lox/interpreter"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session: its cosmetic settings plus the
// interpreter state that persists across lines.
type Repl struct {
	cfg    config.REPL
	interp *interpreter.Interpreter
}

// New creates a Repl configured by cfg, with a fresh global
// environment.
func New(cfg config.REPL, out io.Writer) *Repl {
	return &Repl{cfg: cfg, interp: interpreter.New(out)}
}

// PrintBanner writes the startup banner to writer, the same shape the
// teacher's PrintBannerInfo produces: top rule, banner art, rule,
// version line, rule, three welcome/usage lines, and a closing rule.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.cfg.Line)
	greenColor.Fprintf(writer, "%s\n", r.cfg.Banner)
	blueColor.Fprintf(writer, "%s\n", r.cfg.Line)
	yellowColor.Fprintln(writer, "Version: "+r.cfg.Version+" | Author: "+r.cfg.Author+" | License: "+r.cfg.License)
	blueColor.Fprintf(writer, "%s\n", r.cfg.Line)
	cyanColor.Fprintln(writer, "Welcome to lox!")
	cyanColor.Fprintln(writer, "Type a statement and press enter")
	cyanColor.Fprintln(writer, "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.cfg.Line)
}

// Start runs the loop until '.exit', EOF, or a readline error.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.cfg.Prompt, Stdout: writer})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		r.evalLine(writer, line)
	}
}

// evalLine runs one line through lex/parse/resolve/interpret,
// recovering from any panic the way the teacher's
// executeWithRecovery does, so a single bad line never kills the
// session.
func (r *Repl) evalLine(writer io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	lx := lexer.New(line)
	tokens := lx.Tokenize()
	if len(lx.Errors) > 0 {
		for _, e := range lx.Errors {
			redColor.Fprintf(writer, "%s\n", e.Error())
		}
		return
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", e.Error())
		}
		return
	}

	res := resolver.New()
	res.Resolve(stmts)
	if res.HasErrors() {
		for _, e := range res.Errors() {
			redColor.Fprintf(writer, "%s\n", e.Error())
		}
		return
	}

	if err := r.interp.Interpret(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
