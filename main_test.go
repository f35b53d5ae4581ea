package main

import "testing"

func TestReadEvalPrint(t *testing.T) {
	env := NewEnv()

	out, err := ReadEvalPrint("(+ 1 2)", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3" {
		t.Errorf("expected 3, got %s", out)
	}
}

func TestReadEvalPrintPersistence(t *testing.T) {
	// define effects accumulate across lines in the same session
	env := NewEnv()

	out, err := ReadEvalPrint("(define x 10)", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Void" {
		t.Errorf("expected Void, got %s", out)
	}

	out, _ = ReadEvalPrint("(+ x 5)", env)
	if out != "15" {
		t.Errorf("expected 15, got %s", out)
	}
}

func TestReadEvalPrintErrorKeepsState(t *testing.T) {
	// a failed line reports an error, but defines committed before the
	// failure stay in the environment
	env := NewEnv()

	if _, err := ReadEvalPrint("(define x 10)", env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ReadEvalPrint("(+ x y)", env); err == nil {
		t.Fatalf("expected error for unbound y")
	}

	out, err := ReadEvalPrint("(+ x 1)", env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "11" {
		t.Errorf("expected 11, got %s", out)
	}
}

func TestReadEvalPrintParseError(t *testing.T) {
	env := NewEnv()
	if _, err := ReadEvalPrint("(+ 1 2", env); err == nil {
		t.Errorf("expected parse error")
	}
}
