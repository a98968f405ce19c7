package interp

import "github.com/mjhibbs/glox/internal/lexer"

// runtimeError is a value-level error raised during tree evaluation,
// anchored to the token that triggered it. It unwinds as an ordinary Go
// error return through the evaluator — a distinguished result variant
// rather than a general-purpose unwinding facility — until the top-level
// Interpret call catches it and stops.
type runtimeError struct {
	token   lexer.Token
	message string
}

func (e *runtimeError) Error() string { return e.message }

func newRuntimeError(tok lexer.Token, message string) *runtimeError {
	return &runtimeError{token: tok, message: message}
}

// returnSignal is the non-local exit a `return` statement raises. It
// propagates as an error up through executeBlock/execute until it reaches
// the function-call site that is waiting for it.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return" }
