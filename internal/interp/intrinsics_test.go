package interp

import "testing"

func TestIntrinsicTrunc(t *testing.T) {
	out, r := run(t, `print _trunc(3.9); print _trunc(-3.9);`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "3\n-3\n" {
		t.Errorf("got %q, want %q", out, "3\n-3\n")
	}
}

func TestIntrinsicLength(t *testing.T) {
	out, r := run(t, `print _length("hello");`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "5\n" {
		t.Errorf("got %q, want %q", out, "5\n")
	}
}

func TestIntrinsicChrOrdRoundTrip(t *testing.T) {
	out, r := run(t, `print _chr(65); print _ord("A");`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "A\n65\n" {
		t.Errorf("got %q, want %q", out, "A\n65\n")
	}
}

func TestIntrinsicChrOutOfRangeIsNil(t *testing.T) {
	out, r := run(t, `print _chr(256); print _chr(-1);`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "nil\nnil\n" {
		t.Errorf("got %q, want %q", out, "nil\nnil\n")
	}
}

func TestIntrinsicOrdOnNonSingleCharIsNil(t *testing.T) {
	out, r := run(t, `print _ord(""); print _ord("ab");`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "nil\nnil\n" {
		t.Errorf("got %q, want %q", out, "nil\nnil\n")
	}
}

func TestIntrinsicSubstring(t *testing.T) {
	out, r := run(t, `print _substring("hello world", 6, 5);`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "world\n" {
		t.Errorf("got %q, want %q", out, "world\n")
	}
}

func TestIntrinsicSubstringOutOfBoundsIsNil(t *testing.T) {
	out, r := run(t, `print _substring("hi", 0, 10); print _substring("hi", -1, 1);`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "nil\nnil\n" {
		t.Errorf("got %q, want %q", out, "nil\nnil\n")
	}
}

func TestIntrinsicStdHandles(t *testing.T) {
	out, r := run(t, `print _stdin(); print _stdout(); print _stderr();`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q, want %q", out, "0\n1\n2\n")
	}
}

func TestIntrinsicReadMissingFileIsNil(t *testing.T) {
	out, r := run(t, `print _read("/does/not/exist/glox-test-fixture");`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "nil\n" {
		t.Errorf("got %q, want %q", out, "nil\n")
	}
}

func TestIntrinsicCloseInvalidHandleIsFalse(t *testing.T) {
	out, r := run(t, `print _close(99);`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "false\n" {
		t.Errorf("got %q, want %q", out, "false\n")
	}
}

func TestIntrinsicArgcArgv(t *testing.T) {
	out, r := run(t, `print _argc(); print _argv(0);`)
	if r.HadError() {
		t.Fatalf("unexpected error")
	}
	if out != "0\nnil\n" {
		t.Errorf("got %q, want %q", out, "0\nnil\n")
	}
}
