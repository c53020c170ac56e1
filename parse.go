package calc

// Expr = num | Add | Sub | Mul | Div | Pow | '(' Expr ')' | '-(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr | Expr 'ˆ' Expr
//
// num carries its own sign, so there is no unary operator in the grammar.
// A negated group is (-1) × group and binds tighter than any operator.

type parser struct {
	toks []Token
	i    int
}

// Build builds the tree for a token sequence. Exponentiation groups from the
// right and binds tightest; multiplication and division bind tighter than
// addition and subtraction, and each of those groups from the left.
// Parenthesized groups are subtrees.
//
// Token sequences which leave an operator without an operand, contain an
// empty group, or are empty result in a *MalformedExpressionError.
func Build(toks []Token) (Node, error) {
	p := parser{toks: toks}
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	if p.i < len(p.toks) {
		// Only an unmatched close paren can stop the top-level term.
		return nil, &MalformedExpressionError{Col: p.toks[p.i].Col, Reason: "unmatched )"}
	}
	return n, nil
}

// peek returns the next token without consuming it. ok is false at the end.
func (p *parser) peek() (tok Token, ok bool) {
	if p.i >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.i], true
}

// endcol is the position to report for errors at the end of input.
func (p *parser) endcol() int {
	if len(p.toks) == 0 {
		return 1
	}
	return p.toks[len(p.toks)-1].Col + 1
}

// parseterm parses operands joined by operators more binding than until.
// It stops without consuming a close paren or the first operator that is not
// more binding.
func (p *parser) parseterm(until operator) (Node, error) {
	n, err := p.parselhs()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok {
			return n, nil
		}
		switch tok.Kind {
		case TokenOperator:
			prec := binop(tok.Op)
			if !prec.moreBinding(until) {
				return n, nil
			}
			p.i++
			if _, ok := p.peek(); !ok {
				return nil, &MalformedExpressionError{Col: tok.Col, Reason: "missing right operand for " + tok.Op.String()}
			}
			rhs, err := p.parseterm(prec)
			if err != nil {
				return nil, err
			}
			n = &BinaryOp{Op: tok.Op, Left: n, Right: rhs}
		case TokenRightParen:
			// End of group.
			return n, nil
		default:
			// Normalized input never puts an operand directly after another.
			return nil, &MalformedExpressionError{Col: tok.Col, Reason: "missing operator before " + tok.Kind.String()}
		}
	}
}

// parselhs parses a single operand: a number or a parenthesized group.
func (p *parser) parselhs() (Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &MalformedExpressionError{Col: p.endcol(), Reason: "missing operand at end"}
	}
	switch tok.Kind {
	case TokenNumber:
		p.i++
		return Operand(tok.Value), nil
	case TokenLeftParen:
		p.i++
		if end, ok := p.peek(); ok && end.Kind == TokenRightParen {
			return nil, &MalformedExpressionError{Col: tok.Col, Reason: "empty group"}
		}
		n, err := p.parseterm(exprprec)
		if err != nil {
			return nil, err
		}
		end, ok := p.peek()
		if !ok || end.Kind != TokenRightParen {
			return nil, &MalformedExpressionError{Col: p.endcol(), Reason: "unclosed ("}
		}
		p.i++
		if tok.Neg {
			n = &BinaryOp{Op: Mul, Left: Operand(-1), Right: n}
		}
		return n, nil
	case TokenOperator:
		return nil, &MalformedExpressionError{Col: tok.Col, Reason: "missing left operand for " + tok.Op.String()}
	case TokenRightParen:
		return nil, &MalformedExpressionError{Col: tok.Col, Reason: "missing operand before )"}
	default:
		panic("calc: unknown token: " + tok.String())
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the parsing precedence of a binary operator.
func binop(op Op) operator {
	return operator{int8(op.Precedence()), op.RightAssoc()}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true}
