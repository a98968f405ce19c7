// Package parser implements a recursive-descent parser: token sequence
// in, ordered statement list out, with panic-mode recovery
// at statement boundaries so one bad statement doesn't abort the whole
// parse.
package parser

import (
	"github.com/mjhibbs/glox/internal/ast"
	"github.com/mjhibbs/glox/internal/errors"
	"github.com/mjhibbs/glox/internal/lexer"
)

const maxArgs = 255

// parseError unwinds a single declaration/statement back to synchronize;
// the diagnostic itself has already been reported when this is raised.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser consumes a token slice (normally the output of lexer.Scanner) and
// builds the statement tree.
type Parser struct {
	tokens   []lexer.Token
	current  int
	reporter *errors.Reporter
}

// New creates a Parser over tokens, reporting diagnostics to reporter.
func New(tokens []lexer.Token, reporter *errors.Reporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse runs `program := declaration* EOF` and returns every statement that
// parsed successfully. A statement that failed to parse contributes
// nothing to the result; reporter.HadError() tells the caller whether to
// trust the (possibly partial) output.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// declaration := classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// classDecl := "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENT, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENT, "Expect superclass name.")
		superclass = ast.NewVariable(p.previous())
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		methods = append(methods, p.function("method"))
	}

	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")
	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

// function := IDENT "(" params? ")" block
func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(lexer.IDENT, "Expect "+kind+" name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENT, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

// varDecl := "var" IDENT ("=" expression)? ";"
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENT, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

// statement := exprStmt | forStmt | ifStmt | printStmt | returnStmt
//            | whileStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.Block{Stmts: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block := "{" declaration* "}"  (the opening brace has already been consumed)
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// forStmt := "for" "(" (varDecl | exprStmt | ";")
//                    expression? ";" expression? ")" statement
//
// Desugars to `{ init; while (cond) { body; incr; } }`. A missing
// condition desugars to the literal `true`.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.check(lexer.VAR):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}

	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = &ast.While{Cond: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Stmts: []ast.Stmt{initializer, body}}
	}

	return body
}

// ifStmt := "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBranch}
}

// printStmt := "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Expr: value}
}

// returnStmt := "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

// whileStmt := "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}

// exprStmt := expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.Expression{Expr: expr}
}

// expression := assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment := (call ".")? IDENT "=" assignment | logic_or
//
// Right-associative: parse the left side as a normal expression first, and
// only reinterpret it as an assignment target when '=' follows. An invalid
// target reports a diagnostic but does not panic — parsing continues with
// the left-hand value.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Obj, target.Name, value)
		default:
			p.reporter.ErrorAtToken(equals.AsTokenLike(), "Invalid assignment target.")
			return expr
		}
	}

	return expr
}

// logic_or := logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

// logic_and := equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

// equality := comparison (("!="|"==") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// comparison := term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// term := factor (("-"|"+") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// factor := unary (("/"|"*") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// unary := ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

// call := primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENT, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

// primary := "true" | "false" | "nil" | NUMBER | STRING
//          | "this" | "super" "." IDENT
//          | IDENT | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return ast.NewLiteral(false)
	case p.match(lexer.TRUE):
		return ast.NewLiteral(true)
	case p.match(lexer.NIL):
		return ast.NewLiteral(nil)
	case p.match(lexer.NUMBER, lexer.STRING):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENT, "Expect superclass method name.")
		return ast.NewSuper(keyword, method)
	case p.match(lexer.THIS):
		return ast.NewThis(p.previous())
	case p.match(lexer.IDENT):
		return ast.NewVariable(p.previous())
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	}

	panic(p.errorAtCurrent("Expect expression."))
}

// synchronize discards tokens until the next statement boundary: just past
// a ';', or just before one of the statement-starting keywords.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.RETURN:
			return
		}

		p.advance()
	}
}

// --- token-stream helpers ---

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAtCurrent(message))
}

// errorAtCurrent reports a diagnostic at the current token and returns a
// parseError for the caller to panic with, unwinding to declaration()'s
// recover/synchronize. Cap-exceeded diagnostics (too many args/params)
// report without panicking so parsing can continue.
func (p *Parser) errorAtCurrent(message string) parseError {
	p.reporter.ErrorAtToken(p.peek().AsTokenLike(), message)
	return parseError{}
}
