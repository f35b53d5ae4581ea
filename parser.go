package main

import "fmt"

// Parse consumes a token sequence and produces a single expression tree.
// The tokens are processed in reverse (popped from the tail) so nested
// sublists fall out of plain recursion without lookahead bookkeeping.
func Parse(tokens []Token) (Expr, error) {
	rev := make([]Token, len(tokens))
	for i, t := range tokens {
		rev[len(tokens)-1-i] = t
	}
	return parseList(&rev)
}

func parseList(tokens *[]Token) (Expr, error) {
	t, ok := pop(tokens)
	if !ok {
		return nil, fmt.Errorf("%w: expected (, found end of input", ErrParse)
	}
	if t.Kind != TokenLParen {
		return nil, fmt.Errorf("%w: expected (, found %v", ErrParse, t)
	}

	list := List{}
	for {
		t, ok := pop(tokens)
		if !ok {
			return nil, fmt.Errorf("%w: insufficient tokens", ErrParse)
		}

		switch t.Kind {
		case TokenInteger:
			list = append(list, t.Num)
		case TokenSymbol:
			list = append(list, Symbol(t.Text))
		case TokenLParen:
			push(tokens, t)
			sub, err := parseList(tokens)
			if err != nil {
				return nil, err
			}
			list = append(list, sub)
		case TokenRParen:
			return list, nil
		}
	}
}

func pop(tokens *[]Token) (Token, bool) {
	if len(*tokens) == 0 {
		return Token{}, false
	}
	t := (*tokens)[len(*tokens)-1]
	*tokens = (*tokens)[:len(*tokens)-1]
	return t, true
}

func push(tokens *[]Token, t Token) {
	*tokens = append(*tokens, t)
}
