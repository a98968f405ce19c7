// Package semantic implements the Resolver pass: a single walk over the
// statement tree that binds every variable-referencing expression to a
// lexical scope depth, and catches the handful of static errors that are
// only visible once scoping is known (reading a variable in its own
// initializer, a bad `return`, `this`/`super` outside a class, and so on).
package semantic

import (
	"github.com/mjhibbs/glox/internal/ast"
	"github.com/mjhibbs/glox/internal/errors"
	"github.com/mjhibbs/glox/internal/lexer"
)

// functionKind tracks what kind of callable body is currently being
// resolved, so `return` can be validated against its context.
type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

// classKind tracks whether the resolver is inside a class body, and
// whether that class has a superclass, so `this`/`super` can be validated.
type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// Depths is the resolver's output: the side-table mapping a
// Variable/This/Super node's identity to the number of enclosing-frame
// hops from its use site to its binding site. A node absent from this map
// refers to the global frame.
type Depths map[ast.NodeID]int

// Resolver performs the single statement-tree walk described above.
type Resolver struct {
	reporter *errors.Reporter
	scopes   []map[string]bool
	depths   Depths

	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver that reports static errors to reporter.
func New(reporter *errors.Reporter) *Resolver {
	return &Resolver{reporter: reporter, depths: make(Depths)}
}

// Resolve walks stmts and returns the completed side table. Callers should
// check reporter.HadError() afterward; a resolver error means the tree
// must not be interpreted.
func (r *Resolver) Resolve(stmts []ast.Stmt) Depths {
	r.resolveStmts(stmts)
	return r.depths
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Stmts)
		r.endScope()

	case *ast.Class:
		enclosingClass := r.currentClass
		r.currentClass = ckClass

		r.declare(n.Name)
		r.define(n.Name)

		if n.Superclass != nil {
			if n.Superclass.Name.Lexeme == n.Name.Lexeme {
				r.reporter.ErrorAtToken(n.Superclass.Name.AsTokenLike(), "A class can't inherit from itself.")
			} else {
				r.currentClass = ckSubclass
				r.resolveExpr(n.Superclass)
			}

			r.beginScope()
			r.scopes[len(r.scopes)-1]["super"] = true
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true

		for _, m := range n.Methods {
			kind := fkMethod
			if m.Name.Lexeme == "init" {
				kind = fkInitializer
			}
			r.resolveFunction(m, kind)
		}

		r.endScope()
		if n.Superclass != nil {
			r.endScope()
		}

		r.currentClass = enclosingClass

	case *ast.Expression:
		r.resolveExpr(n.Expr)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n, fkFunction)

	case *ast.If:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.Print:
		r.resolveExpr(n.Expr)

	case *ast.Return:
		if r.currentFunction == fkNone {
			r.reporter.ErrorAtToken(n.Keyword.AsTokenLike(), "Can't return from top-level code.")
		}
		if n.Value != nil {
			if r.currentFunction == fkInitializer {
				r.reporter.ErrorAtToken(n.Keyword.AsTokenLike(), "Can't return a value from an initializer.")
			}
			r.resolveExpr(n.Value)
		}

	case *ast.Var:
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpr(n.Initializer)
		}
		r.define(n.Name)

	case *ast.While:
		r.resolveExpr(n.Cond)
		r.resolveStmt(n.Body)
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(n.Obj)

	case *ast.Grouping:
		r.resolveExpr(n.Inner)

	case *ast.Literal:
		// no sub-expressions, nothing to resolve

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Obj)

	case *ast.Super:
		switch r.currentClass {
		case ckNone:
			r.reporter.ErrorAtToken(n.Keyword.AsTokenLike(), "Can't use 'super' outside of a class.")
		case ckClass:
			r.reporter.ErrorAtToken(n.Keyword.AsTokenLike(), "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(n, "super")

	case *ast.This:
		if r.currentClass == ckNone {
			r.reporter.ErrorAtToken(n.Keyword.AsTokenLike(), "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n, "this")

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !defined {
				r.reporter.ErrorAtToken(n.Name.AsTokenLike(), "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)
	}
}

// resolveLocal searches the scope stack from innermost outward and, on the
// first scope containing name, records the hop count in the side table.
// A name found in no scope is left unresolved and treated as global.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare inserts name into the innermost scope as "not yet defined". A
// second declaration of the same name in the same local scope is a static
// error; the global scope allows it (there is no scope on the stack at
// global depth, so declare/define are no-ops there).
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ErrorAtToken(name.AsTokenLike(), "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
