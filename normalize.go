package calc

import "unicode"

// Normalize repairs an expression as typed into a calculator so that it can
// be tokenized. It removes whitespace (keeping one space between numbers so
// that they stay separate), drops trailing open parentheses, closes
// unclosed groups, inserts × between a number or group and an adjacent
// group, and removes parentheses around single, possibly signed, numbers.
//
// Normalize is idempotent. It does not check that the result is valid.
func Normalize(s string) string {
	return normalize(s, false)
}

func normalize(s string, strict bool) string {
	r := []rune(s)
	if !strict {
		r = collapseSpace(r)
	}
	r = closeGroups(r)
	r = implicitMul(r)
	for {
		var changed bool
		r, changed = stripSingles(r)
		if !changed {
			return string(r)
		}
	}
}

// collapseSpace removes whitespace. A run of whitespace between two number
// runes becomes one space.
func collapseSpace(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); i++ {
		if !unicode.IsSpace(r[i]) {
			out = append(out, r[i])
			continue
		}
		j := i
		for j < len(r) && unicode.IsSpace(r[j]) {
			j++
		}
		if len(out) > 0 && isNumRune(out[len(out)-1]) && j < len(r) && isNumRune(r[j]) {
			out = append(out, ' ')
		}
		i = j - 1
	}
	return out
}

// closeGroups drops trailing open parentheses, which could only ever close
// into empty groups, then appends a close paren for each unclosed group.
// Unmatched close parens are left in place.
func closeGroups(r []rune) []rune {
	for len(r) > 0 && r[len(r)-1] == '(' {
		r = r[:len(r)-1]
	}
	depth := 0
	for _, c := range r {
		switch c {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}
	for ; depth > 0; depth-- {
		r = append(r, ')')
	}
	return r
}

// implicitMul inserts × where a group is adjacent to a number or another
// group with no operator between them.
func implicitMul(r []rune) []rune {
	out := make([]rune, 0, len(r))
	for i, c := range r {
		if i > 0 {
			p := r[i-1]
			if p == ')' && (c == '(' || isNumRune(c)) || isNumRune(p) && c == '(' {
				out = append(out, '×')
			}
		}
		out = append(out, c)
	}
	return out
}

// stripSingles removes one level of parentheses around single numbers, e.g.
// (5) and (−5). The parentheses stay around a signed number when they
// follow a sign, so that two signs never end up adjacent.
func stripSingles(r []rune) ([]rune, bool) {
	out := make([]rune, 0, len(r))
	changed := false
	for i := 0; i < len(r); i++ {
		if r[i] != '(' {
			out = append(out, r[i])
			continue
		}
		j := i + 1
		signed := j < len(r) && isMinus(r[j])
		if signed {
			j++
		}
		k := j
		for k < len(r) && isNumRune(r[k]) {
			k++
		}
		if k == j || k >= len(r) || r[k] != ')' || signed && afterSign(out) {
			out = append(out, r[i])
			continue
		}
		out = append(out, r[i+1:k]...)
		i = k
		changed = true
	}
	return out, changed
}

// afterSign reports whether the last rune of r is a minus in sign position.
func afterSign(r []rune) bool {
	n := len(r)
	if n == 0 || !isMinus(r[n-1]) {
		return false
	}
	if n == 1 {
		return true
	}
	p := r[n-2]
	return p == '(' || opglyph(p) != opNone
}
