package calc

import (
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Eval returns the operand's value.
func (o Operand) Eval() float64 {
	return float64(o)
}

// Eval evaluates both children and applies the operator. Division by zero
// and powers outside the real numbers give infinities or NaN.
func (n *BinaryOp) Eval() float64 {
	l, r := n.Left.Eval(), n.Right.Eval()
	switch n.Op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	case Pow:
		return pow(l, r)
	default:
		panic("calc: invalid operator " + n.Op.String())
	}
}

// powprec is the mantissa size for powers computed with bigfloat.
const powprec = 64

// pow computes x^y with math.Pow semantics. Non-integral powers of positive
// bases are computed in extended precision when the result is a normal
// float64.
func pow(x, y float64) float64 {
	r := math.Pow(x, y)
	if x <= 0 || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(y) || y == math.Trunc(y) {
		return r
	}
	if math.IsInf(r, 0) || math.Abs(r) < 0x1p-1022 {
		return r
	}
	var z, bx, by big.Float
	z.SetPrec(powprec)
	bx.SetPrec(powprec).SetFloat64(x)
	by.SetPrec(powprec).SetFloat64(y)
	bigfloat.Pow(&z, &bx, &by)
	f, _ := z.Float64()
	return f
}

// DefaultPlaces is the number of decimal places results are rounded to
// unless changed with Places.
const DefaultPlaces = 12

// Round rounds x to the given number of decimal places, halves away from
// zero. NaN and infinities are returned unchanged, as are values with no
// fraction left at that scale. If places is negative, x is returned as is.
func Round(x float64, places int) float64 {
	if places < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow10(places)
	if math.IsInf(scale, 0) {
		// No float64 has a fraction at that many places.
		return x
	}
	s := x * scale
	if math.IsInf(s, 0) || math.Abs(s) >= 1<<53 {
		return x
	}
	return math.Round(s) / scale
}

// Evaluate repairs, parses, and evaluates a display string and returns the
// rounded result.
//
// An expression with nothing to evaluate, such as "", "0", or "42", results
// in an *EmptyExpressionError. Other invalid input results in a *SyntaxError
// or a *MalformedExpressionError.
func Evaluate(expr string, opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	if t := strings.TrimSpace(expr); t == "" || t == "0" {
		return 0, &EmptyExpressionError{Input: expr}
	}
	norm := normalize(expr, cfg.strict)
	toks, err := Tokenize(norm)
	if err != nil {
		return 0, err
	}
	if !strings.ContainsAny(norm, Operators+"()") {
		return 0, &EmptyExpressionError{Input: expr}
	}
	n, err := Build(toks)
	if err != nil {
		return 0, err
	}
	return Round(n.Eval(), cfg.places), nil
}
