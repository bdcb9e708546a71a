package gocalc

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TokenNumber TokenType = iota
	TokenOperator
	TokenLeftParen
	TokenRightParen
)

// Token is a single lexical element. Value is set for TokenNumber and Op for
// TokenOperator; the other fields are zero.
type Token struct {
	Type  TokenType
	Value int64
	Op    byte
}

func NumberToken(v int64) Token {
	return Token{Type: TokenNumber, Value: v}
}

func OperatorToken(op byte) Token {
	return Token{Type: TokenOperator, Op: op}
}

func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return strconv.FormatInt(t.Value, 10)
	case TokenOperator:
		return string(t.Op)
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	}
	return fmt.Sprintf("Token(%d)", int(t.Type))
}

func isOperator(b byte) bool {
	return b == '+' || b == '-' || b == '*' || b == '/'
}

func precedence(op byte) int {
	switch op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	}
	return 0
}
