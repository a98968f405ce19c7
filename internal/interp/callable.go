package interp

import "github.com/mjhibbs/glox/internal/ast"

// Callable is the Value variant that can appear on the left of a Call
// expression: a user function, a bound method, a class (construction), or
// an intrinsic.
type Callable interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// Function is a user-declared function or method value. Its closure is the
// environment frame active at the point the `fun`/method declaration was
// executed; calling it creates a fresh frame enclosed by that closure.
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction captures closure as the function's closure frame.
func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Type() string { return "FUNCTION" }
func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call binds each parameter, executes the body, and unwraps a returnSignal
// into its value. An initializer method always yields the receiver,
// regardless of whether it executed an explicit `return`.
func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			if f.isInitializer {
				return f.closure.GetAt(0, "this"), nil
			}
			return ret.value, nil
		}
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return NilValue{}, nil
}

// Bind produces a fresh callable identical to f but whose closure is a new
// frame binding `this` to instance, enclosed by f's original closure.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

// NativeFunction is an intrinsic registered into the globals before
// interpretation.
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) (Value, error)
}

// NewNativeFunction wraps fn as a Callable with the given arity.
func NewNativeFunction(name string, arity int, fn func(interp *Interpreter, args []Value) (Value, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Type() string     { return "NATIVE_FUNCTION" }
func (n *NativeFunction) String() string   { return "<native fn>" }
func (n *NativeFunction) Arity() int       { return n.arity }
func (n *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.fn(interp, args)
}
