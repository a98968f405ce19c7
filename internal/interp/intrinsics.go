package interp

import (
	"math"
	"time"

	"github.com/mjhibbs/glox/internal/builtins"
	"github.com/mjhibbs/glox/internal/lexer"
)

// nativeToken stands in for a source location on errors raised inside a
// native function body, which has no call-site token of its own to anchor
// to — intrinsics report a message without a precise source line.
var nativeToken = lexer.Token{Lexeme: "native fn"}

// registerIntrinsics installs the fixed intrinsic table into globals,
// wrapping host for the I/O-backed ones. start is the
// interpreter's construction time, the epoch `clock` measures elapsed
// seconds against.
func registerIntrinsics(globals *Environment, host *builtins.Host, start time.Time) {
	define := func(name string, arity int, fn func(*Interpreter, []Value) (Value, error)) {
		globals.Define(name, NewNativeFunction(name, arity, fn))
	}

	define("clock", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return NumberValue(time.Since(start).Seconds()), nil
	})

	define("_trunc", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, ok := args[0].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		return NumberValue(math.Trunc(float64(n))), nil
	})

	define("_length", 1, func(_ *Interpreter, args []Value) (Value, error) {
		s, ok := args[0].(StringValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a string.")
		}
		return NumberValue(float64(len(string(s)))), nil
	})

	define("_chr", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, ok := args[0].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		code := int(n)
		if code < 0 || code > 255 {
			return NilValue{}, nil
		}
		return StringValue(string(rune(code))), nil
	})

	define("_ord", 1, func(_ *Interpreter, args []Value) (Value, error) {
		s, ok := args[0].(StringValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a string.")
		}
		runes := []rune(string(s))
		if len(runes) != 1 {
			return NilValue{}, nil
		}
		code := runes[0]
		if code > 255 {
			return NilValue{}, nil
		}
		return NumberValue(float64(code)), nil
	})

	define("_substring", 3, func(_ *Interpreter, args []Value) (Value, error) {
		s, ok := args[0].(StringValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a string.")
		}
		start, ok := args[1].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		length, ok := args[2].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		runes := []rune(string(s))
		from := int(start)
		to := from + int(length)
		if from < 0 || to < from || to > len(runes) {
			return NilValue{}, nil
		}
		return StringValue(string(runes[from:to])), nil
	})

	define("_argc", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return NumberValue(float64(host.Argc())), nil
	})

	define("_argv", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, ok := args[0].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		v, ok := host.Argv(int(n))
		if !ok {
			return NilValue{}, nil
		}
		return StringValue(v), nil
	})

	define("_stdin", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return NumberValue(builtins.StdinHandle), nil
	})
	define("_stdout", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return NumberValue(builtins.StdoutHandle), nil
	})
	define("_stderr", 0, func(_ *Interpreter, _ []Value) (Value, error) {
		return NumberValue(builtins.StderrHandle), nil
	})

	define("_read", 1, func(_ *Interpreter, args []Value) (Value, error) {
		path, ok := args[0].(StringValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a string.")
		}
		handle, ok := host.Read(string(path))
		if !ok {
			return NilValue{}, nil
		}
		return NumberValue(float64(handle)), nil
	})

	define("_write", 1, func(_ *Interpreter, args []Value) (Value, error) {
		path, ok := args[0].(StringValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a string.")
		}
		handle, ok := host.Write(string(path))
		if !ok {
			return NilValue{}, nil
		}
		return NumberValue(float64(handle)), nil
	})

	define("_close", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, ok := args[0].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		return BooleanValue(host.Close(int(n))), nil
	})

	define("_get", 1, func(_ *Interpreter, args []Value) (Value, error) {
		n, ok := args[0].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		b, ok := host.Get(int(n))
		if !ok {
			return NilValue{}, nil
		}
		return NumberValue(float64(b)), nil
	})

	define("_put", 2, func(_ *Interpreter, args []Value) (Value, error) {
		b, ok := args[0].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		handle, ok := args[1].(NumberValue)
		if !ok {
			return nil, newRuntimeError(nativeToken, "Operand must be a number.")
		}
		byteVal := int(b)
		if byteVal < 0 || byteVal > 255 {
			return NilValue{}, nil
		}
		if !host.Put(int(handle), byte(byteVal)) {
			return NilValue{}, nil
		}
		return NumberValue(float64(byteVal)), nil
	})
}
