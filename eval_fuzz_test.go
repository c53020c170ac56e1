//go:build go1.18
// +build go1.18

package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("1+2")
	f.Add("(1+2)(3")
	f.Add("1×2÷−3ˆ4")
	f.Add("−(−5)")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.Evaluate(s)
		if err != nil {
			if _, ok := err.(calc.InputError); !ok {
				t.Errorf("%q gave non-input error %#v", s, err)
			}
			if r != 0 {
				t.Errorf("%q gave result %v with error %v", s, r, err)
			}
		}
	})
}

func FuzzNormalize(f *testing.F) {
	f.Add("(1+2")
	f.Add("3(4)")
	f.Add("((−5))")
	f.Add("1 2 (3")
	f.Fuzz(func(t *testing.T, s string) {
		n := calc.Normalize(s)
		if m := calc.Normalize(n); m != n {
			t.Errorf("Normalize(%q) = %q is not a fixed point: %q", s, n, m)
		}
	})
}
