package ast

import (
	"fmt"
	"strings"
)

// PrintStmts renders a statement list as a parenthesized s-expression, one
// statement per line. It exists for the `parse` debug subcommand and for
// tests that want a readable, diffable tree shape.
func PrintStmts(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		sb.WriteString(printStmt(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

func printStmt(s Stmt) string {
	switch n := s.(type) {
	case *Block:
		parts := make([]string, len(n.Stmts))
		for i, inner := range n.Stmts {
			parts[i] = printStmt(inner)
		}
		return paren("block", parts...)
	case *Class:
		parts := []string{n.Name.Lexeme}
		if n.Superclass != nil {
			parts = append(parts, "<"+n.Superclass.Name.Lexeme)
		}
		for _, m := range n.Methods {
			parts = append(parts, printStmt(m))
		}
		return paren("class", parts...)
	case *Expression:
		return paren("expr", printExpr(n.Expr))
	case *Function:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Lexeme
		}
		body := make([]string, len(n.Body))
		for i, st := range n.Body {
			body[i] = printStmt(st)
		}
		return paren("fun "+n.Name.Lexeme+"("+strings.Join(names, " ")+")", body...)
	case *If:
		parts := []string{printExpr(n.Cond), printStmt(n.Then)}
		if n.Else != nil {
			parts = append(parts, printStmt(n.Else))
		}
		return paren("if", parts...)
	case *Print:
		return paren("print", printExpr(n.Expr))
	case *Return:
		if n.Value == nil {
			return "(return)"
		}
		return paren("return", printExpr(n.Value))
	case *Var:
		if n.Initializer == nil {
			return paren("var " + n.Name.Lexeme)
		}
		return paren("var "+n.Name.Lexeme, printExpr(n.Initializer))
	case *While:
		return paren("while", printExpr(n.Cond), printStmt(n.Body))
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Assign:
		return paren("= "+n.Name.Lexeme, printExpr(n.Value))
	case *Binary:
		return paren(n.Op.Lexeme, printExpr(n.Left), printExpr(n.Right))
	case *Call:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = printExpr(a)
		}
		return paren("call "+printExpr(n.Callee), parts...)
	case *Get:
		return paren(". "+n.Name.Lexeme, printExpr(n.Obj))
	case *Grouping:
		return paren("group", printExpr(n.Inner))
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Logical:
		return paren(n.Op.Lexeme, printExpr(n.Left), printExpr(n.Right))
	case *Set:
		return paren(". "+n.Name.Lexeme+" =", printExpr(n.Obj), printExpr(n.Value))
	case *Super:
		return "(super." + n.Method.Lexeme + ")"
	case *This:
		return "this"
	case *Unary:
		return paren(n.Op.Lexeme, printExpr(n.Right))
	case *Variable:
		return n.Name.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func paren(name string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + name + ")"
	}
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}
