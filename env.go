package main

type Env struct {
	vars   map[Symbol]Expr
	parent *Env
}

func NewEnv() *Env {
	return &Env{vars: map[Symbol]Expr{}}
}

// ChildEnv creates an empty scope whose lookups fall through to parent.
// One child is created per function application and dropped when the
// call's evaluation returns.
func ChildEnv(parent *Env) *Env {
	return &Env{vars: map[Symbol]Expr{}, parent: parent}
}

func (e *Env) Get(name Symbol) (Expr, bool) {
	if val, ok := e.vars[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Set inserts or overwrites in the local table only. It never writes
// through to a parent, which is what keeps a define inside a function
// body local to that call.
func (e *Env) Set(name Symbol, val Expr) {
	e.vars[name] = val
}
