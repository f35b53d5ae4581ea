package main

import "fmt"

var binaryOps = map[Symbol]bool{
	"+": true, "-": true, "*": true, "/": true,
	"<": true, ">": true, "=": true, "!=": true,
}

// Eval reduces an expression tree against an environment chain.
// Atoms are self-evaluating; a lambda literal reduces to Void since
// lambdas only mean something as call targets.
func Eval(expr Expr, env *Env) (Expr, error) {
	switch t := expr.(type) {
	case Void, int64, bool:
		return t, nil
	case Lambda:
		return Void{}, nil
	case Symbol:
		return evalSymbol(t, env)
	case List:
		return evalList(t, env)
	default:
		return nil, fmt.Errorf("%w: cannot evaluate %v", ErrType, t)
	}
}

func evalSymbol(s Symbol, env *Env) (Expr, error) {
	val, ok := env.Get(s)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnboundSymbol, s)
	}
	return val, nil
}

func evalList(list List, env *Env) (Expr, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: cannot evaluate empty list", ErrType)
	}

	head, isSym := list[0].(Symbol)
	if !isSym {
		return evalElements(list, env)
	}

	switch {
	case binaryOps[head]:
		return evalBinaryOp(list, env)
	case head == "define":
		return evalDefine(list, env)
	case head == "if":
		return evalIf(list, env)
	case head == "lambda":
		return evalLambda(list)
	default:
		return evalCall(head, list, env)
	}
}

func evalBinaryOp(list List, env *Env) (Expr, error) {
	if len(list) != 3 {
		return nil, fmt.Errorf("%w: operator %s takes 2 operands, got %d",
			ErrArity, list[0], len(list)-1)
	}

	op := list[0].(Symbol)
	left, err := evalIntOperand(list[1], env, "left")
	if err != nil {
		return nil, err
	}
	right, err := evalIntOperand(list[2], env, "right")
	if err != nil {
		return nil, err
	}

	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return nil, fmt.Errorf("%w: %d / 0", ErrDivideByZero, left)
		}
		return left / right, nil
	case "<":
		return left < right, nil
	case ">":
		return left > right, nil
	case "=":
		return left == right, nil
	default: // !=
		return left != right, nil
	}
}

func evalIntOperand(expr Expr, env *Env, side string) (int64, error) {
	val, err := Eval(expr, env)
	if err != nil {
		return 0, err
	}
	n, isInt := val.(int64)
	if !isInt {
		return 0, fmt.Errorf("%w: %s operand must be an integer, got %s",
			ErrType, side, Print(val))
	}
	return n, nil
}

func evalDefine(list List, env *Env) (Expr, error) {
	if len(list) != 3 {
		return nil, fmt.Errorf("%w: define takes a symbol and a value, got %d arguments",
			ErrArity, len(list)-1)
	}

	sym, isSym := list[1].(Symbol)
	if !isSym {
		return nil, fmt.Errorf("%w: first argument to define must be a symbol", ErrType)
	}

	val, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}

	env.Set(sym, val)
	return Void{}, nil
}

func evalIf(list List, env *Env) (Expr, error) {
	if len(list) != 4 {
		return nil, fmt.Errorf("%w: if takes a condition and 2 branches, got %d arguments",
			ErrArity, len(list)-1)
	}

	cond, err := Eval(list[1], env)
	if err != nil {
		return nil, err
	}
	b, isBool := cond.(bool)
	if !isBool {
		return nil, fmt.Errorf("%w: if condition must be a boolean, got %s",
			ErrType, Print(cond))
	}

	// only the taken branch is ever evaluated
	if b {
		return Eval(list[2], env)
	}
	return Eval(list[3], env)
}

func evalLambda(list List) (Expr, error) {
	if len(list) != 3 {
		return nil, fmt.Errorf("%w: lambda takes a parameter list and a body, got %d arguments",
			ErrArity, len(list)-1)
	}

	paramList, isList := list[1].(List)
	if !isList {
		return nil, fmt.Errorf("%w: lambda parameters must be a list", ErrType)
	}
	params := make([]Symbol, len(paramList))
	for i, p := range paramList {
		sym, isSym := p.(Symbol)
		if !isSym {
			return nil, fmt.Errorf("%w: lambda parameter must be a symbol, got %s",
				ErrType, Print(p))
		}
		params[i] = sym
	}

	body, isList := list[2].(List)
	if !isList {
		return nil, fmt.Errorf("%w: lambda body must be a list", ErrType)
	}

	return Lambda{Params: params, Body: body}, nil
}

// evalCall applies a named lambda. The callee is resolved in the
// environment in effect at the call site, not one captured at definition
// time; recursive calls work only because the defining name is still
// visible through the dynamic chain.
func evalCall(name Symbol, list List, env *Env) (Expr, error) {
	val, ok := env.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnboundSymbol, name)
	}
	lambda, isLambda := val.(Lambda)
	if !isLambda {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotCallable, name, Print(val))
	}

	args := list[1:]
	if len(args) != len(lambda.Params) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrArity, name, len(lambda.Params), len(args))
	}

	// arguments evaluate in the caller's environment, before the new
	// scope exists
	child := ChildEnv(env)
	for i, param := range lambda.Params {
		arg, err := Eval(args[i], env)
		if err != nil {
			return nil, err
		}
		child.Set(param, arg)
	}

	return Eval(lambda.Body, child)
}

// evalElements handles a list whose head is itself a compound expression:
// every item evaluates independently and Void results are dropped. This is
// also how a multi-expression lambda body is sequenced, so a body of
// defines plus one final expression comes back as a single-element list
// wrapping that survivor.
func evalElements(list List, env *Env) (Expr, error) {
	result := List{}
	for _, item := range list {
		val, err := Eval(item, env)
		if err != nil {
			return nil, err
		}
		if _, isVoid := val.(Void); isVoid {
			continue
		}
		result = append(result, val)
	}
	return result, nil
}
