package lexer

import (
	"fmt"

	"github.com/mjhibbs/glox/internal/errors"
)

// Token is a single lexical unit produced by the Scanner: its type, the raw
// source text it covers, the decoded literal for NUMBER/STRING tokens, and
// the 1-based source line it starts on.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // nil, float64 (NUMBER), or string (STRING)
	Line    int
}

// String renders a token for diagnostics and the `lex` subcommand.
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

// AsTokenLike adapts a Token to errors.TokenLike so the shared reporter can
// anchor a diagnostic to it without the errors package depending on lexer.
func (t Token) AsTokenLike() errors.TokenLike {
	return errors.TokenLike{Lexeme: t.Lexeme, Line: t.Line, IsEOF: t.Type == EOF}
}
