package main

import (
	"strconv"
	"strings"
)

type TokenKind int

const (
	TokenLParen TokenKind = iota
	TokenRParen
	TokenInteger
	TokenSymbol
)

type Token struct {
	Kind TokenKind
	Num  int64  // valid when Kind == TokenInteger
	Text string // valid when Kind == TokenSymbol
}

func (t Token) String() string {
	switch t.Kind {
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenInteger:
		return strconv.FormatInt(t.Num, 10)
	default:
		return t.Text
	}
}

// Tokenize splits program text into parenthesis markers, integers and
// symbols. Parens are padded with spaces so a plain whitespace split is
// enough; any word that doesn't parse as a signed 64-bit decimal is a
// symbol. The error return is the hook for rejecting characters in a
// stricter tokenizer; the current rules accept every word.
func Tokenize(program string) ([]Token, error) {
	padded := strings.ReplaceAll(program, "(", " ( ")
	padded = strings.ReplaceAll(padded, ")", " ) ")

	var tokens []Token
	for _, word := range strings.Fields(padded) {
		tokens = append(tokens, matchToken(word))
	}
	return tokens, nil
}

func matchToken(word string) Token {
	switch word {
	case "(":
		return Token{Kind: TokenLParen}
	case ")":
		return Token{Kind: TokenRParen}
	}
	n, err := strconv.ParseInt(word, 10, 64)
	if err == nil {
		return Token{Kind: TokenInteger, Num: n}
	}
	return Token{Kind: TokenSymbol, Text: word}
}
