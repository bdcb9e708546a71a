package gocalc

import (
	"fmt"
	"unicode/utf8"
)

// LexError reports a character that cannot start any token.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unknown character: %c", e.Char)
}

// Lex splits text into tokens. Spaces are skipped. Digit runs become a
// single number; values that do not fit in int64 wrap around.
func Lex(text string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case '0' <= c && c <= '9':
			var v int64
			for i < len(text) && '0' <= text[i] && text[i] <= '9' {
				v = v*10 + int64(text[i]-'0')
				i++
			}
			tokens = append(tokens, NumberToken(v))
			continue
		case isOperator(c):
			tokens = append(tokens, OperatorToken(c))
		case c == '(':
			tokens = append(tokens, Token{Type: TokenLeftParen})
		case c == ')':
			tokens = append(tokens, Token{Type: TokenRightParen})
		case c == ' ':
		default:
			r, _ := utf8.DecodeRuneInString(text[i:])
			return nil, &LexError{Char: r, Pos: i}
		}
		i++
	}
	return tokens, nil
}
