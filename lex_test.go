package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	num := func(v float64, col int) Token { return Token{Kind: TokenNumber, Value: v, Col: col} }
	op := func(o Op, col int) Token { return Token{Kind: TokenOperator, Op: o, Col: col} }
	open := func(col int) Token { return Token{Kind: TokenLeftParen, Col: col} }
	close := func(col int) Token { return Token{Kind: TokenRightParen, Col: col} }
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		{"empty", "", nil},
		{"int", "0", []Token{num(0, 1)}},
		{"long", "9876543210", []Token{num(9876543210, 1)}},
		{"decimal", "1.25", []Token{num(1.25, 1)}},
		{"trailing-dot", "5.", []Token{num(5, 1)}},
		{"leading-dot", ".5", []Token{num(0.5, 1)}},
		{"neg", "-1", []Token{num(-1, 1)}},
		{"display-neg", "−1.5", []Token{num(-1.5, 1)}},
		{"neg-dot", "-.5", []Token{num(-0.5, 1)}},
		{"add", "1+2", []Token{num(1, 1), op(Add, 2), num(2, 3)}},
		{"sub", "1-2", []Token{num(1, 1), op(Sub, 2), num(2, 3)}},
		{"display-sub", "1−2", []Token{num(1, 1), op(Sub, 2), num(2, 3)}},
		{"mul", "1*2", []Token{num(1, 1), op(Mul, 2), num(2, 3)}},
		{"display-mul", "1×2", []Token{num(1, 1), op(Mul, 2), num(2, 3)}},
		{"div", "1/2", []Token{num(1, 1), op(Div, 2), num(2, 3)}},
		{"display-div", "1÷2", []Token{num(1, 1), op(Div, 2), num(2, 3)}},
		{"pow", "1^2", []Token{num(1, 1), op(Pow, 2), num(2, 3)}},
		{"display-pow", "1ˆ2", []Token{num(1, 1), op(Pow, 2), num(2, 3)}},
		{"sub-neg", "3--5", []Token{num(3, 1), op(Sub, 2), num(-5, 3)}},
		{"mul-neg", "3×−5", []Token{num(3, 1), op(Mul, 2), num(-5, 3)}},
		{"paren", "(1)", []Token{open(1), num(1, 2), close(3)}},
		{"paren-neg", "(-1+2)", []Token{open(1), num(-1, 2), op(Add, 4), num(2, 5), close(6)}},
		{"neg-group", "-(1)", []Token{{Kind: TokenLeftParen, Neg: true, Col: 1}, num(1, 3), close(4)}},
		{"group-sub", "(1)-2", []Token{open(1), num(1, 2), close(3), op(Sub, 4), num(2, 5)}},
		{"empty-group", "()", []Token{open(1), close(2)}},
		{"leading-op", "×5", []Token{op(Mul, 1), num(5, 2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: %v", c.src, err)
			}
			if diff := cmp.Diff(c.tokens, toks); diff != "" {
				t.Errorf("tokenizing %q: (-want +got)\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeInf(t *testing.T) {
	src := "1"
	for i := 0; i < 400; i++ {
		src += "0"
	}
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("huge literal failed to tokenize: %v", err)
	}
	if len(toks) != 1 || !math.IsInf(toks[0].Value, 1) {
		t.Errorf("huge literal should be +Inf, got %v", toks)
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
	}{
		{"trailing-op", "5+", 2},
		{"trailing-sign", "5×-", 3},
		{"lone-dot", ".", 1},
		{"op-dot", "5+.", 3},
		{"two-dots", "1.2.3", 1},
		{"consecutive", "5+×3", 3},
		{"consecutive-sign", "5+--3", 3},
		{"double-sign", "--3", 1},
		{"op-close", "(5+)", 4},
		{"sign-close", "(5+-)", 4},
		{"unmatched", "5)", 2},
		{"unclosed", "(5", 3},
		{"letter", "2+a", 3},
		{"space", "1 2", 2},
		{"tab", "1\t+2", 2},
		{"number-paren", "1 (2)", 2},
		{"bracket", "[1]", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("%q tokenized to %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("%q gave partial tokens %v", c.src, toks)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("%q gave %#v, not *SyntaxError", c.src, err)
			}
			if se.Pos() != c.col {
				t.Errorf("%q: wrong position: want %d, got %d (%v)", c.src, c.col, se.Pos(), err)
			}
		})
	}
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		op := opglyph(r)
		if op == opNone {
			t.Errorf("no operator for %c", r)
		}
		if op.Precedence() == 0 {
			t.Errorf("%c has no precedence", r)
		}
	}
}
