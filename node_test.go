package gocalc

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeTree(t *testing.T) {
	node, err := Parse(mustLex(t, "2 + 3"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := node.Tree(&buf); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"└┬────┐\n" +
		" │ +  │\n" +
		" └──┬─┘\n" +
		"    ├┬────┐\n" +
		"    ││  2 │\n" +
		"    │└────┘\n" +
		"    └┬────┐\n" +
		"     │  3 │\n" +
		"     └────┘\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}

func TestNodeTreeWideNumber(t *testing.T) {
	var buf bytes.Buffer
	if err := NewNumber(12345).Tree(&buf); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"└┬───────┐\n" +
		" │ 12345 │\n" +
		" └───────┘\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Error(diff)
	}
}

func TestNodeCounts(t *testing.T) {
	tests := []struct {
		node      *Node
		leaves    int
		internals int
	}{
		{NewNumber(1), 1, 0},
		{NewBinary('+', NewNumber(1), NewNumber(2)), 2, 1},
		{NewBinary('*', NewBinary('-', NewNumber(1), NewNumber(2)), NewBinary('/', NewNumber(3), NewNumber(4))), 4, 3},
	}
	for _, test := range tests {
		if got := test.node.Leaves(); got != test.leaves {
			t.Errorf("%v: want %d leaves, got %d", test.node, test.leaves, got)
		}
		if got := test.node.Internals(); got != test.internals {
			t.Errorf("%v: want %d internal nodes, got %d", test.node, test.internals, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tokens := []Token{NumberToken(12), OperatorToken('*'), {Type: TokenLeftParen}, {Type: TokenRightParen}}
	var got []string
	for _, tok := range tokens {
		got = append(got, tok.String())
	}
	if diff := cmp.Diff([]string{"12", "*", "(", ")"}, got); diff != "" {
		t.Error(diff)
	}
}
