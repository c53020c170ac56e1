package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Token is one lexical unit of a normalized expression.
type Token struct {
	Kind TokenKind
	// Value is the value of a TokenNumber, including its sign.
	Value float64
	// Op is the operator of a TokenOperator.
	Op Op
	// Neg marks a TokenLeftParen preceded by a unary minus. The group it opens
	// is negated.
	Neg bool
	// Col is the 1-based rune position of the token in the tokenized string.
	Col int
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenNumber:
		s = strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenOperator:
		s = t.Op.String()
	case TokenLeftParen:
		s = "("
		if t.Neg {
			s = "-("
		}
	case TokenRightParen:
		s = ")"
	}
	return t.Kind.String() + ":" + s + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a possibly signed integer or decimal literal.
	TokenNumber
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenLeftParen is an open parenthesis.
	TokenLeftParen
	// TokenRightParen is a close parenthesis.
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	default:
		return "None"
	}
}

// Operators contains the runes which are considered to be operators. Both
// the ASCII and the display forms of each operator are accepted.
const Operators = "+-−*×/÷^ˆ"

// Minus signs. The display minus is U+2212.
const (
	hyphenMinus  = '-'
	displayMinus = '−'
)

// opglyph maps an operator rune to its Op. The result is opNone for any other
// rune.
func opglyph(r rune) Op {
	switch r {
	case '+':
		return Add
	case hyphenMinus, displayMinus:
		return Sub
	case '*', '×':
		return Mul
	case '/', '÷':
		return Div
	case '^', 'ˆ':
		return Pow
	default:
		return opNone
	}
}

func isMinus(r rune) bool {
	return r == hyphenMinus || r == displayMinus
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

type lexer struct {
	src  []rune
	i    int
	toks []Token
	// depth is the number of open parentheses not yet closed.
	depth int
}

// Tokenize scans a normalized expression into tokens. The minus glyph is a
// sign when it begins the expression or follows an open parenthesis or an
// operator; then it is folded into the following number, or marks the
// following group as negated. Otherwise it is subtraction.
//
// Input that cannot be a well-formed sequence of operands and operators
// results in a *SyntaxError and no tokens.
func Tokenize(s string) ([]Token, error) {
	l := lexer{src: []rune(s)}
	for l.i < len(l.src) {
		if err := l.next(); err != nil {
			return nil, err
		}
	}
	if err := l.end(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// last returns the kind of the last token scanned, or tokenNone at the start.
func (l *lexer) last() TokenKind {
	if len(l.toks) == 0 {
		return tokenNone
	}
	return l.toks[len(l.toks)-1].Kind
}

// operand reports whether the lexer is at a position where an operand must
// come next.
func (l *lexer) operand() bool {
	switch l.last() {
	case tokenNone, TokenOperator, TokenLeftParen:
		return true
	default:
		return false
	}
}

// next scans one token, or a sign and the number or group it applies to.
func (l *lexer) next() error {
	col := l.i + 1
	r := l.src[l.i]
	switch {
	case unicode.IsSpace(r):
		if l.last() == TokenNumber && l.i+1 < len(l.src) && isNumRune(l.src[l.i+1]) {
			return l.error(col, string(r), "missing operator between operands")
		}
		return l.error(col, string(r), "invalid character")
	case isNumRune(r):
		if !l.operand() {
			return l.error(col, string(r), "missing operator before number")
		}
		return l.scanNum(col, false)
	case r == '(':
		if !l.operand() {
			return l.error(col, "(", "missing operator before (")
		}
		l.i++
		l.depth++
		l.toks = append(l.toks, Token{Kind: TokenLeftParen, Col: col})
		return nil
	case r == ')':
		if l.depth == 0 {
			return l.error(col, ")", "unmatched )")
		}
		if l.last() == TokenOperator {
			return l.error(col, ")", "missing operand before )")
		}
		l.i++
		l.depth--
		l.toks = append(l.toks, Token{Kind: TokenRightParen, Col: col})
		return nil
	case isMinus(r) && l.operand():
		return l.scanSign(col)
	}
	op := opglyph(r)
	if op == opNone {
		return l.error(col, string(r), "invalid character")
	}
	if l.last() == TokenOperator {
		return l.error(col, string(r), "consecutive operators")
	}
	l.i++
	l.toks = append(l.toks, Token{Kind: TokenOperator, Op: op, Col: col})
	return nil
}

// scanSign scans a unary minus and the number or group following it.
func (l *lexer) scanSign(col int) error {
	sign := string(l.src[l.i])
	l.i++
	if l.i >= len(l.src) {
		return l.error(col, sign, "operator at end of expression")
	}
	switch r := l.src[l.i]; {
	case isNumRune(r):
		return l.scanNum(col, true)
	case r == '(':
		l.i++
		l.depth++
		l.toks = append(l.toks, Token{Kind: TokenLeftParen, Neg: true, Col: col})
		return nil
	case r == ')':
		return l.error(col, sign+")", "missing operand before )")
	case opglyph(r) != opNone:
		return l.error(col, sign+string(r), "consecutive operators")
	default:
		return l.error(l.i+1, string(r), "invalid character")
	}
}

// scanNum scans a number literal starting at the current rune. col is the
// position of the token, which is the sign if neg is true.
func (l *lexer) scanNum(col int, neg bool) error {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	var dig, dot bool
	for ; l.i < len(l.src); l.i++ {
		r := l.src[l.i]
		if r == '.' {
			if dot {
				b.WriteRune(r)
				return l.error(col, b.String(), "invalid number")
			}
			dot = true
		} else if '0' <= r && r <= '9' {
			dig = true
		} else {
			break
		}
		b.WriteRune(r)
	}
	text := b.String()
	if !dig {
		return l.error(col, text, "invalid number")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// ParseFloat accepts everything we scan.
		panic("calc: invalid number " + strconv.Quote(text) + ": " + err.Error())
	}
	l.toks = append(l.toks, Token{Kind: TokenNumber, Value: v, Col: col})
	return nil
}

// end checks the conditions at the end of the input.
func (l *lexer) end() error {
	if l.last() == TokenOperator {
		t := l.toks[len(l.toks)-1]
		return l.error(t.Col, t.Op.String(), "operator at end of expression")
	}
	if l.depth > 0 {
		return l.error(len(l.src)+1, "", "unclosed (")
	}
	return nil
}

func (l *lexer) error(col int, text, reason string) error {
	return &SyntaxError{Col: col, Text: text, Reason: reason}
}

// SyntaxError indicates input that does not tokenize into a well-formed
// expression. It implements InputError.
type SyntaxError struct {
	// Col is the 1-based rune position in the normalized expression.
	Col int
	// Text is the offending text, or empty at the end of the input.
	Text string
	// Reason describes the problem.
	Reason string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "syntax error: "+err.Reason)
	}
	return errpos(err.Col, "syntax error: "+err.Reason+": "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}
