package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInternal marks a tree that Parse would never produce, such as a
	// missing child or an unknown operator.
	ErrInternal = errors.New("internal error")
)

// EvalError reports an expression that parsed but cannot be computed.
type EvalError struct {
	Err error
}

func (e *EvalError) Error() string {
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

type frame struct {
	node *Node
	done bool
}

// Eval computes the value of the tree rooted at node. It keeps its own stack
// so that deeply nested input cannot exhaust the goroutine stack. The left
// subtree is always evaluated before the right one. Arithmetic wraps on
// int64 overflow.
func Eval(node *Node) (int64, error) {
	stack := []frame{{node: node}}
	var values []int64
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		if n == nil {
			return 0, fmt.Errorf("%w: nil node", ErrInternal)
		}
		switch n.t {
		case NodeNumber:
			values = append(values, n.v)
		case NodeBinary:
			if !f.done {
				stack = append(stack, frame{node: n, done: true}, frame{node: n.right}, frame{node: n.left})
				continue
			}
			k := len(values)
			lhs, rhs := values[k-2], values[k-1]
			v, err := apply(n.op, lhs, rhs)
			if err != nil {
				return 0, err
			}
			values = append(values[:k-2], v)
		default:
			return 0, fmt.Errorf("%w: unknown node type %d", ErrInternal, int(n.t))
		}
	}
	return values[0], nil
}

func apply(op byte, lhs, rhs int64) (int64, error) {
	switch op {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	case '*':
		return lhs * rhs, nil
	case '/':
		if rhs == 0 {
			return 0, &EvalError{Err: ErrDivisionByZero}
		}
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrInternal, op)
}
