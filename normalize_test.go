package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"plain", "1+2", "1+2"},
		{"close", "(1+2", "(1+2)"},
		{"close-many", "((1+2)×(3", "((1+2)×3)"},
		{"trailing-open", "2+(", "2+"},
		{"trailing-opens", "2×(3+((", "2×(3+)"},
		{"only-opens", "((", ""},
		{"group-num", "(1+2)3", "(1+2)×3"},
		{"num-group", "3(1+2)", "3×(1+2)"},
		{"group-group", "(1+2)(3+4)", "(1+2)×(3+4)"},
		{"decimal-group", "2.(1+1)", "2.×(1+1)"},
		{"single", "(5)+2", "5+2"},
		{"single-num", "3(4)", "3×4"},
		{"single-neg", "3-(-5)", "3--5"},
		{"single-display-neg", "3×(−5)", "3×−5"},
		{"single-nested", "((5))", "5"},
		{"single-decimal", "(.5)", ".5"},
		{"neg-single-neg", "−(−5)", "−(−5)"},
		{"op-neg-single-neg", "2×-(-5)", "2×-(-5)"},
		{"neg-single", "-(5)", "-5"},
		{"empty-group", "()", "()"},
		{"empty-group-mul", "3()", "3×()"},
		{"spaces", " 1 + 2 ", "1+2"},
		{"spaces-group", "3 (4+1)", "3×(4+1)"},
		{"spaces-numbers", "1  2", "1 2"},
		{"unmatched-close", "1)(2", "1)×2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calc.Normalize(c.src)
			if got != c.want {
				t.Errorf("Normalize(%q): want %q, got %q", c.src, c.want, got)
			}
			if again := calc.Normalize(got); again != got {
				t.Errorf("Normalize(%q) = %q is not a fixed point: %q", c.src, got, again)
			}
		})
	}
}
