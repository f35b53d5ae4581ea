package main

// Expr is a node of the parsed expression tree. The concrete types are:
//
//	Void    - the "no useful value" sentinel
//	int64   - integer literal
//	bool    - boolean literal
//	Symbol  - identifier, resolved against an Env
//	Lambda  - function literal
//	List    - application or plain data list
//
// Trees are immutable once parsed; evaluation only ever mutates an Env.
type Expr interface{}

type Symbol string

type List []Expr

// Void is returned by define and by evaluating a lambda literal directly.
// List evaluation drops Void results so a sequence of defines prints clean.
type Void struct{}

// Lambda holds parameter names and the unevaluated body expressions.
// It deliberately captures no environment: application extends the
// call-site environment, so recursion resolves through the dynamic chain.
type Lambda struct {
	Params []Symbol
	Body   List
}
