package gocalc

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	lp := Token{Type: TokenLeftParen}
	rp := Token{Type: TokenRightParen}
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  nil,
		},
		{
			input: "   ",
			want:  nil,
		},
		{
			input: "42",
			want:  []Token{NumberToken(42)},
		},
		{
			input: "007",
			want:  []Token{NumberToken(7)},
		},
		{
			input: "2 + 3 * 4",
			want:  []Token{NumberToken(2), OperatorToken('+'), NumberToken(3), OperatorToken('*'), NumberToken(4)},
		},
		{
			input: "(12-3)/4",
			want:  []Token{lp, NumberToken(12), OperatorToken('-'), NumberToken(3), rp, OperatorToken('/'), NumberToken(4)},
		},
		{
			input: "1 2",
			want:  []Token{NumberToken(1), NumberToken(2)},
		},
		{
			input: ")(",
			want:  []Token{rp, lp},
		},
	}
	for _, test := range tests {
		got, err := Lex(test.input)
		if err != nil {
			t.Errorf("Lex(%q): %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestLexError(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		pos   int
	}{
		{"3 & 4", '&', 2},
		{"x", 'x', 0},
		{"1\t+ 2", '\t', 1},
		{"1 + 2.5", '.', 5},
		{"2 × 3", '×', 2},
	}
	for _, test := range tests {
		tokens, err := Lex(test.input)
		if tokens != nil {
			t.Errorf("Lex(%q) returned tokens %v with an error", test.input, tokens)
		}
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("Lex(%q): want *LexError, got %v", test.input, err)
			continue
		}
		if lexErr.Char != test.char || lexErr.Pos != test.pos {
			t.Errorf("Lex(%q): want %q at %d, got %q at %d", test.input, test.char, test.pos, lexErr.Char, lexErr.Pos)
		}
	}

	_, err := Lex("3 & 4")
	if got, want := err.Error(), "unknown character: &"; got != want {
		t.Errorf("want %q but got %q", want, got)
	}
}

func TestLexIdempotent(t *testing.T) {
	for _, input := range []string{"1", "2 + 3 * 4", "((1 + 2) * (3 - 4)) / 5"} {
		first, err := Lex(input)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Lex(input)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Lex(%q) is not stable:\n%s", input, diff)
		}
	}
}

func TestLexOverflowWraps(t *testing.T) {
	tokens, err := Lex("9223372036854775808")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Token{NumberToken(math.MinInt64)}, tokens); diff != "" {
		t.Error(diff)
	}
}

func TestDigitsRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 9, 10, 99, 12345, 1 << 31, math.MaxInt64} {
		s := strconv.FormatInt(n, 10)
		got, err := Calc(s)
		if err != nil {
			t.Errorf("Calc(%q): %v", s, err)
			continue
		}
		if got != n {
			t.Errorf("want %d for %q but got %d", n, s, got)
		}
	}
}
