// Package gocalc evaluates single-line integer arithmetic expressions built
// from + - * /, decimal literals and parentheses.
package gocalc

// Calc lexes, parses and evaluates text. The returned error is a *LexError,
// *ParseError or *EvalError depending on the stage that failed.
func Calc(text string) (int64, error) {
	tokens, err := Lex(text)
	if err != nil {
		return 0, err
	}
	node, err := Parse(tokens)
	if err != nil {
		return 0, err
	}
	return Eval(node)
}
