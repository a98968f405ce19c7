package errors

import (
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)

	r.Error(3, "Unexpected character.")

	want := "[line 3] Error: Unexpected character.\n"
	if buf.String() != want {
		t.Errorf("Error() wrote %q, want %q", buf.String(), want)
	}
	if !r.HadError() {
		t.Error("HadError() = false after reporting an error")
	}
}

func TestErrorAtTokenMidStream(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)

	r.ErrorAtToken(TokenLike{Lexeme: "}", Line: 5}, "Expect ';' after value.")

	want := "[line 5] Error at `}`: Expect ';' after value.\n"
	if buf.String() != want {
		t.Errorf("ErrorAtToken() wrote %q, want %q", buf.String(), want)
	}
}

func TestErrorAtTokenEOF(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)

	r.ErrorAtToken(TokenLike{Line: 5, IsEOF: true}, "Expect expression.")

	want := "[line 5] Error at end: Expect expression.\n"
	if buf.String() != want {
		t.Errorf("ErrorAtToken() wrote %q, want %q", buf.String(), want)
	}
}

func TestReset(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)

	r.Error(1, "boom")
	if !r.HadError() {
		t.Fatal("HadError() = false after an error")
	}

	r.Reset()
	if r.HadError() {
		t.Error("HadError() = true after Reset()")
	}
}

func TestRuntimeErrorDelegatesToErrorAtToken(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)

	r.RuntimeError(TokenLike{Lexeme: "+", Line: 2}, "Operands must both be numbers.")

	want := "[line 2] Error at `+`: Operands must both be numbers.\n"
	if buf.String() != want {
		t.Errorf("RuntimeError() wrote %q, want %q", buf.String(), want)
	}
}
