package lexer

import (
	"strings"
	"testing"

	"github.com/mjhibbs/glox/internal/errors"
)

func scanAll(t *testing.T, source string) ([]Token, *errors.Reporter) {
	t.Helper()
	var buf strings.Builder
	r := errors.New(&buf)
	s := New(source, r)
	return s.ScanTokens(), r
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanSingleAndTwoCharTokens(t *testing.T) {
	tokens, r := scanAll(t, "( ) { } , . - + ; * ! != = == > >= < <= /")
	if r.HadError() {
		t.Fatalf("unexpected lexer error")
	}

	want := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL,
		GREATER, GREATER_EQUAL, LESS, LESS_EQUAL, SLASH, EOF,
	}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("token %d: got %s, want %s", i, got[i], tt)
		}
	}
}

func TestScanNumberLiteral(t *testing.T) {
	tokens, r := scanAll(t, "123.45")
	if r.HadError() {
		t.Fatalf("unexpected lexer error")
	}
	if tokens[0].Type != NUMBER {
		t.Fatalf("got token type %s, want NUMBER", tokens[0].Type)
	}
	if tokens[0].Literal.(float64) != 123.45 {
		t.Errorf("got literal %v, want 123.45", tokens[0].Literal)
	}
}

func TestScanStringLiteral(t *testing.T) {
	tokens, r := scanAll(t, `"hello world"`)
	if r.HadError() {
		t.Fatalf("unexpected lexer error")
	}
	if tokens[0].Type != STRING {
		t.Fatalf("got token type %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Literal.(string) != "hello world" {
		t.Errorf("got literal %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, r := scanAll(t, `"never closes`)
	if !r.HadError() {
		t.Error("expected a lexer error for an unterminated string")
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens, r := scanAll(t, "class fun var this super nil true false and or counter")
	if r.HadError() {
		t.Fatalf("unexpected lexer error")
	}
	want := []TokenType{CLASS, FUN, VAR, THIS, SUPER, NIL, TRUE, FALSE, AND, OR, IDENT, EOF}
	got := tokenTypes(tokens)
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("token %d: got %s, want %s", i, got[i], tt)
		}
	}
}

func TestScanIdentifierNotKeyword(t *testing.T) {
	tokens, r := scanAll(t, "classroom")
	if r.HadError() {
		t.Fatalf("unexpected lexer error")
	}
	if tokens[0].Type != IDENT {
		t.Errorf("got token type %s, want IDENT", tokens[0].Type)
	}
}

func TestScanLineComment(t *testing.T) {
	tokens, r := scanAll(t, "1 // this is a comment\n2")
	if r.HadError() {
		t.Fatalf("unexpected lexer error")
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3 (two numbers + EOF): %v", len(tokens), tokens)
	}
	if tokens[1].Line != 2 {
		t.Errorf("second number on line %d, want 2", tokens[1].Line)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, r := scanAll(t, "@")
	if !r.HadError() {
		t.Error("expected a lexer error for an unexpected character")
	}
}

func TestScanTracksLineNumbers(t *testing.T) {
	tokens, r := scanAll(t, "1\n2\n3")
	if r.HadError() {
		t.Fatalf("unexpected lexer error")
	}
	for i, want := range []int{1, 2, 3} {
		if tokens[i].Line != want {
			t.Errorf("token %d on line %d, want %d", i, tokens[i].Line, want)
		}
	}
}
