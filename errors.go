package main

import "errors"

// Every failure is a value returned up the call chain; the REPL prints the
// message and moves on to the next line. Callers can classify with errors.Is.
var (
	ErrToken         = errors.New("unexpected character")
	ErrParse         = errors.New("parse error")
	ErrUnboundSymbol = errors.New("unbound symbol")
	ErrArity         = errors.New("wrong number of arguments")
	ErrType          = errors.New("type error")
	ErrNotCallable   = errors.New("not callable")
	ErrDivideByZero  = errors.New("division by zero")
)
