// Package ast defines the syntax tree produced by the parser: tagged Expr
// and Stmt variants, each carrying a stable small integer identity
// (NodeID) for use as a resolver side-table key — rather than keying on
// host pointer identity, every node gets an id at construction.
package ast

import "github.com/mjhibbs/glox/internal/lexer"

// NodeID is a dense, per-process-unique identifier assigned to every
// expression node at construction time.
type NodeID int64

var nextNodeID NodeID

// newID hands out the next node identity. The interpreter is single-
// threaded, so a package-level counter needs no locking.
func newID() NodeID {
	nextNodeID++
	return nextNodeID
}

// Expr is any expression node. ID returns its side-table key.
type Expr interface {
	ID() NodeID
	exprNode()
}

type exprBase struct{ id NodeID }

func newExprBase() exprBase { return exprBase{id: newID()} }

// ID returns the node's stable identity.
func (b exprBase) ID() NodeID { return b.id }

func (exprBase) exprNode() {}

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  lexer.Token
	Value Expr
}

func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

// Binary is `left op right` for arithmetic and comparison operators.
type Binary struct {
	exprBase
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Call is `callee(args...)`. Paren is the closing `)`, used to anchor
// runtime errors raised by the call to a line.
type Call struct {
	exprBase
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}

// Get is `obj.name`, a property or method read.
type Get struct {
	exprBase
	Obj  Expr
	Name lexer.Token
}

func NewGet(obj Expr, name lexer.Token) *Get {
	return &Get{exprBase: newExprBase(), Obj: obj, Name: name}
}

// Grouping is a parenthesized expression, kept as its own node so that
// precedence is visible in the tree rather than implicit.
type Grouping struct {
	exprBase
	Inner Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Inner: inner}
}

// Literal is a constant value baked in at parse time: nil, a bool, a
// number, or a string.
type Literal struct {
	exprBase
	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{exprBase: newExprBase(), Value: value}
}

// Logical is `left and right` / `left or right`, kept distinct from Binary
// because it short-circuits.
type Logical struct {
	exprBase
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func NewLogical(left Expr, op lexer.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// Set is `obj.name = value`, a property write.
type Set struct {
	exprBase
	Obj   Expr
	Name  lexer.Token
	Value Expr
}

func NewSet(obj Expr, name lexer.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Obj: obj, Name: name, Value: value}
}

// Super is `super.method`.
type Super struct {
	exprBase
	Keyword lexer.Token
	Method  lexer.Token
}

func NewSuper(keyword, method lexer.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

// This is the `this` keyword used as an expression.
type This struct {
	exprBase
	Keyword lexer.Token
}

func NewThis(keyword lexer.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

// Unary is `-right` or `!right`.
type Unary struct {
	exprBase
	Op    lexer.Token
	Right Expr
}

func NewUnary(op lexer.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Op: op, Right: right}
}

// Variable is a bare identifier used as an expression (a read).
type Variable struct {
	exprBase
	Name lexer.Token
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}
