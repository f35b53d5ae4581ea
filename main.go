package main

import (
	"fmt"

	"github.com/peterh/liner"
)

const prompt = "lisp> "

// ReadEvalPrint runs one full cycle against env: tokenize, parse,
// evaluate, render. define effects persist in env across calls.
func ReadEvalPrint(input string, env *Env) (string, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return "", err
	}

	ast, err := Parse(tokens)
	if err != nil {
		return "", err
	}

	val, err := Eval(ast, env)
	if err != nil {
		return "", err
	}

	return Print(val), nil
}

func ReadEvalPrintLoop() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	env := NewEnv()
	for {
		input, err := line.Prompt(prompt)
		if err != nil { // io.EOF or liner.ErrPromptAborted
			break
		}
		if input == "exit" {
			break
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		output, err := ReadEvalPrint(input, env)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(output)
	}

	fmt.Println("Good bye")
}

func main() {
	ReadEvalPrintLoop()
}
