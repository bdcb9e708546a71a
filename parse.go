package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalanced = errors.New("unbalanced parentheses")
	ErrMalformed  = errors.New("malformed expression")
)

// ParseError reports a token sequence that does not form an expression. Pos
// is the index of the offending token, or len(tokens) when the problem is
// only visible at the end of input.
type ParseError struct {
	Err error
	Pos int
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type parser struct {
	operands  []*Node
	operators []Token
	pos       int
}

func (p *parser) errorf(err error) error {
	return &ParseError{Err: err, Pos: p.pos}
}

// fold pops two operands and combines them with op; the first pop is the
// right operand.
func (p *parser) fold(op byte) error {
	if len(p.operands) < 2 {
		return p.errorf(ErrMalformed)
	}
	n := len(p.operands)
	left, right := p.operands[n-2], p.operands[n-1]
	p.operands = append(p.operands[:n-2], NewBinary(op, left, right))
	return nil
}

func (p *parser) popOperator() (Token, bool) {
	n := len(p.operators)
	if n == 0 {
		return Token{}, false
	}
	top := p.operators[n-1]
	p.operators = p.operators[:n-1]
	return top, true
}

func (p *parser) pushOperator(op byte) error {
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		if top.Type != TokenOperator || precedence(top.Op) < precedence(op) {
			break
		}
		p.operators = p.operators[:len(p.operators)-1]
		if err := p.fold(top.Op); err != nil {
			return err
		}
	}
	p.operators = append(p.operators, OperatorToken(op))
	return nil
}

func (p *parser) closeParen() error {
	for {
		top, ok := p.popOperator()
		if !ok {
			return p.errorf(ErrUnbalanced)
		}
		if top.Type == TokenLeftParen {
			return nil
		}
		if err := p.fold(top.Op); err != nil {
			return err
		}
	}
}

// Parse builds an AST from tokens with the shunting-yard algorithm. '*' and
// '/' bind tighter than '+' and '-'; operators of equal precedence group
// left to right.
func Parse(tokens []Token) (*Node, error) {
	p := &parser{}
	// Alternates between operand and operator positions; adjacent operands
	// or operators would otherwise be folded into a bogus tree.
	wantOperand := true
	for i, tok := range tokens {
		p.pos = i
		switch tok.Type {
		case TokenNumber:
			if !wantOperand {
				return nil, p.errorf(ErrMalformed)
			}
			p.operands = append(p.operands, NewNumber(tok.Value))
			wantOperand = false
		case TokenOperator:
			if wantOperand || !isOperator(tok.Op) {
				return nil, p.errorf(ErrMalformed)
			}
			if err := p.pushOperator(tok.Op); err != nil {
				return nil, err
			}
			wantOperand = true
		case TokenLeftParen:
			if !wantOperand {
				return nil, p.errorf(ErrMalformed)
			}
			p.operators = append(p.operators, tok)
		case TokenRightParen:
			if err := p.closeParen(); err != nil {
				return nil, err
			}
			if wantOperand {
				return nil, p.errorf(ErrMalformed)
			}
		default:
			return nil, p.errorf(fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok))
		}
	}

	p.pos = len(tokens)
	for {
		top, ok := p.popOperator()
		if !ok {
			break
		}
		if top.Type == TokenLeftParen {
			return nil, p.errorf(ErrUnbalanced)
		}
		if err := p.fold(top.Op); err != nil {
			return nil, err
		}
	}
	if len(p.operands) != 1 || wantOperand {
		return nil, p.errorf(ErrMalformed)
	}
	return p.operands[0], nil
}
