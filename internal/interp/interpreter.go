package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/mjhibbs/glox/internal/ast"
	"github.com/mjhibbs/glox/internal/builtins"
	"github.com/mjhibbs/glox/internal/errors"
	"github.com/mjhibbs/glox/internal/lexer"
	"github.com/mjhibbs/glox/internal/semantic"
)

// Interpreter walks a statement tree against a dynamic environment chain,
// consulting the resolver's side table to find where each variable use
// binds.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	depths      semantic.Depths
	reporter    *errors.Reporter
	out         io.Writer
}

// New creates an Interpreter whose print sink is out and whose diagnostics
// go to reporter. host supplies the file-handle table and argv behind the
// I/O intrinsics; it is owned by the caller, not by this Interpreter, so
// one Host can outlive many interpreter runs (e.g. across prompt-loop
// iterations) if a caller wants that.
func New(out io.Writer, reporter *errors.Reporter, host *builtins.Host) *Interpreter {
	globals := NewEnvironment()
	registerIntrinsics(globals, host, time.Now())
	return &Interpreter{
		globals:     globals,
		environment: globals,
		depths:      make(semantic.Depths),
		reporter:    reporter,
		out:         out,
	}
}

// SetDepths installs the resolver's side table. Interpret consults it for
// every Variable/Assign/This/Super node.
func (i *Interpreter) SetDepths(depths semantic.Depths) {
	i.depths = depths
}

// Interpret executes stmts in order against the global frame. A runtime
// error aborts the whole program immediately — there is no catch in the
// language — after being reported through the shared Reporter.
func (i *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			if rerr, ok := err.(*runtimeError); ok {
				i.reporter.RuntimeError(rerr.token.AsTokenLike(), rerr.message)
			}
			return
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch n := stmt.(type) {
	case *ast.Block:
		return i.executeBlock(n.Stmts, NewEnclosedEnvironment(i.environment))

	case *ast.Class:
		return i.executeClass(n)

	case *ast.Expression:
		_, err := i.evaluate(n.Expr)
		return err

	case *ast.Function:
		fn := NewFunction(n, i.environment, false)
		i.environment.Define(n.Name.Lexeme, fn)
		return nil

	case *ast.If:
		cond, err := i.evaluate(n.Cond)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(n.Then)
		}
		if n.Else != nil {
			return i.execute(n.Else)
		}
		return nil

	case *ast.Print:
		value, err := i.evaluate(n.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, value.String())
		return nil

	case *ast.Return:
		value := Value(NilValue{})
		if n.Value != nil {
			v, err := i.evaluate(n.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.Var:
		value := Value(NilValue{})
		if n.Initializer != nil {
			v, err := i.evaluate(n.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.environment.Define(n.Name.Lexeme, value)
		return nil

	case *ast.While:
		for {
			cond, err := i.evaluate(n.Cond)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(n.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// executeBlock runs stmts with env as the current frame, restoring the
// previous frame on every exit, including an error exit.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeClass evaluates a Class statement: resolve the superclass if
// any, bind each method's closure, and define the class value.
func (i *Interpreter) executeClass(n *ast.Class) error {
	var superclass *Class
	if n.Superclass != nil {
		v, err := i.evaluate(n.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(n.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc

		i.environment = NewEnclosedEnvironment(i.environment)
		i.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(n.Methods))
	for _, m := range n.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = NewFunction(m, i.environment, isInit)
	}

	class := NewClass(n.Name.Lexeme, superclass, methods)

	if superclass != nil {
		i.environment = i.environment.enclosing
	}

	i.environment.Define(n.Name.Lexeme, class)
	return nil
}

func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch n := expr.(type) {
	case *ast.Assign:
		return i.evalAssign(n)
	case *ast.Binary:
		return i.evalBinary(n)
	case *ast.Call:
		return i.evalCall(n)
	case *ast.Get:
		return i.evalGet(n)
	case *ast.Grouping:
		return i.evaluate(n.Inner)
	case *ast.Literal:
		return literalValue(n.Value), nil
	case *ast.Logical:
		return i.evalLogical(n)
	case *ast.Set:
		return i.evalSet(n)
	case *ast.Super:
		return i.evalSuper(n)
	case *ast.This:
		return i.lookupVariable(n.Keyword, n.ID())
	case *ast.Unary:
		return i.evalUnary(n)
	case *ast.Variable:
		return i.lookupVariable(n.Name, n.ID())
	}
	return NilValue{}, nil
}

func (i *Interpreter) evalAssign(n *ast.Assign) (Value, error) {
	value, err := i.evaluate(n.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.depths[n.ID()]; ok {
		i.environment.AssignAt(distance, n.Name.Lexeme, value)
		return value, nil
	}

	if !i.globals.assignOwn(n.Name.Lexeme, value) {
		return nil, newRuntimeError(n.Name, fmt.Sprintf("Undefined variable '%s'.", n.Name.Lexeme))
	}
	return value, nil
}

func (i *Interpreter) evalLogical(n *ast.Logical) (Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return i.evaluate(n.Right)
}

func (i *Interpreter) evalGet(n *ast.Get) (Value, error) {
	obj, err := i.evaluate(n.Obj)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(n.Name, "Only instances have properties.")
	}
	return inst.Get(n.Name)
}

func (i *Interpreter) evalSet(n *ast.Set) (Value, error) {
	obj, err := i.evaluate(n.Obj)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(n.Name, "Only instances have fields.")
	}
	value, err := i.evaluate(n.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(n.Name, value)
	return value, nil
}

func (i *Interpreter) evalSuper(n *ast.Super) (Value, error) {
	distance := i.depths[n.ID()]
	superclass := i.environment.GetAt(distance, "super").(*Class)
	instance := i.environment.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(n.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(n.Method, fmt.Sprintf("Undefined property '%s'.", n.Method.Lexeme))
	}
	return method.Bind(instance), nil
}

func (i *Interpreter) evalUnary(n *ast.Unary) (Value, error) {
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op.Type {
	case lexer.MINUS:
		num, ok := right.(NumberValue)
		if !ok {
			return nil, newRuntimeError(n.Op, "Operand must be a number.")
		}
		return -num, nil
	case lexer.BANG:
		return BooleanValue(!isTruthy(right)), nil
	}
	return NilValue{}, nil
}

func (i *Interpreter) evalCall(n *ast.Call) (Value, error) {
	callee, err := i.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(n.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(n.Paren, fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(i, args)
}

func (i *Interpreter) evalBinary(n *ast.Binary) (Value, error) {
	left, err := i.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case lexer.PLUS:
		if l, ok := left.(NumberValue); ok {
			if r, ok := right.(NumberValue); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(StringValue); ok {
			if r, ok := right.(StringValue); ok {
				return l + r, nil
			}
		}
		return nil, newRuntimeError(n.Op, "Operands must both be numbers or strings.")

	case lexer.MINUS:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return NumberValue(l - r), nil

	case lexer.STAR:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return NumberValue(l * r), nil

	case lexer.SLASH:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, newRuntimeError(n.Op, "Cannot divide by zero.")
		}
		return NumberValue(l / r), nil

	case lexer.GREATER:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return BooleanValue(l > r), nil

	case lexer.GREATER_EQUAL:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return BooleanValue(l >= r), nil

	case lexer.LESS:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return BooleanValue(l < r), nil

	case lexer.LESS_EQUAL:
		l, r, err := bothNumbers(n.Op, left, right)
		if err != nil {
			return nil, err
		}
		return BooleanValue(l <= r), nil

	case lexer.BANG_EQUAL:
		return BooleanValue(!valuesEqual(left, right)), nil

	case lexer.EQUAL_EQUAL:
		return BooleanValue(valuesEqual(left, right)), nil
	}

	return NilValue{}, nil
}

// bothNumbers requires that a and b are both NumberValue, reporting
// "Operands must both be numbers." otherwise.
func bothNumbers(op lexer.Token, a, b Value) (float64, float64, error) {
	ln, ok := a.(NumberValue)
	if !ok {
		return 0, 0, newRuntimeError(op, "Operands must both be numbers.")
	}
	rn, ok := b.(NumberValue)
	if !ok {
		return 0, 0, newRuntimeError(op, "Operands must both be numbers.")
	}
	return float64(ln), float64(rn), nil
}

// lookupVariable: a resolved node walks its recorded depth; an unresolved
// one is read from the global frame.
func (i *Interpreter) lookupVariable(name lexer.Token, id ast.NodeID) (Value, error) {
	if distance, ok := i.depths[id]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}
	if v, ok := i.globals.getOwn(name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return NilValue{}
	case bool:
		return BooleanValue(val)
	case float64:
		return NumberValue(val)
	case string:
		return StringValue(val)
	default:
		return NilValue{}
	}
}
