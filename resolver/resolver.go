/*
File    : lox/resolver/resolver.go
Package : resolver

Package resolver performs the static scope pass described in spec.md
§4.3: a single pre-order walk of the parsed tree that annotates every
ast.VariableExpr, ast.AssignExpr, ast.ThisExpr, and ast.SuperExpr with
the number of enclosing local scopes to walk before finding its
binding. A nil depth means "this name is global".

The resolver mutates the AST in place by writing through each node's
Depth pointer field, the design the spec's Design Notes calls out as
preferable only when AST nodes are otherwise immutable; here, as in
the teacher's `parser.RootNode.Value` convention of storing derived
state directly on nodes, in-place annotation was chosen over a side
table keyed by node identity.
*/
package resolver

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/loxerr"
)

// functionType tracks what kind of function body the resolver is
// currently inside, governing whether `return` is legal and whether a
// value-carrying `return` is legal.
type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
)

// classType tracks whether the resolver is currently inside a class
// body, governing whether `this`/`super` are legal.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program once and annotates scope depths.
type Resolver struct {
	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType

	errors []*loxerr.ResolveError
}

// New creates a Resolver ready to resolve one program. The scope
// stack starts empty: the global scope is implicit and untracked, per
// spec.md §3's "Absent after resolution means 'global'" rule.
func New() *Resolver {
	return &Resolver{}
}

// Errors returns every static scope error found during Resolve.
func (r *Resolver) Errors() []*loxerr.ResolveError { return r.errors }

// HasErrors reports whether any resolution error was collected.
func (r *Resolver) HasErrors() bool { return len(r.errors) > 0 }

// Resolve walks every statement in order, the resolver's single public
// entry point.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

// fail records a resolution error at line, which every call site takes
// from the token at hand.
func (r *Resolver) fail(line int, message string) {
	r.errors = append(r.errors, &loxerr.ResolveError{Line: line, Message: message})
}

// declare adds name to the innermost scope as "not yet defined". A
// name already present in that same scope is a redeclaration error —
// unless there is no enclosing local scope at all, i.e. this is a
// global declaration, which spec.md §4.3 explicitly tolerates.
func (r *Resolver) declare(line int, name string) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.fail(line, "Already a variable with name '"+name+"' in this scope.")
	}
	scope[name] = false
}

// define marks name as fully initialized in the innermost scope, so
// that a subsequent read within its own initializer is caught before
// define runs (see resolveLocal's self-reference check).
func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal searches the scope stack from innermost to outermost
// for name, writing the depth (scopes from the top) into depthOut when
// found; depthOut is left nil when name is never declared locally,
// meaning it resolves against the global environment at run time.
func (r *Resolver) resolveLocal(line int, name string, depthOut **int) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		scope := r.scopes[i]
		defined, ok := scope[name]
		if !ok {
			continue
		}
		if !defined {
			r.fail(line, "Can't read local variable in its own initializer.")
		}
		depth := len(r.scopes) - 1 - i
		*depthOut = &depth
		return
	}
	*depthOut = nil
}

// resolveLocalAlways is like resolveLocal but used for writes
// (assignment, and the implicit lookups for `this`/`super`), which
// never trigger the self-initializer check.
func (r *Resolver) resolveLocalAlways(name string, depthOut **int) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			depth := len(r.scopes) - 1 - i
			*depthOut = &depth
			return
		}
	}
	*depthOut = nil
}

// resolveFunctionBody opens a fresh scope containing the parameters
// (declared and defined immediately, since parameters have no
// initializer to self-reference), resolves the body within it, and
// restores the enclosing function context afterward.
func (r *Resolver) resolveFunctionBody(fn *ast.FunctionStmt, kind functionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	defer r.endScope()

	for _, p := range fn.Params {
		r.declare(p.Line, p.Lexeme)
		r.define(p.Lexeme)
	}
	for _, s := range fn.Body {
		r.resolveStmt(s)
	}
}
