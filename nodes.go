package calc

import (
	"strconv"
	"strings"
)

// Op is a binary arithmetic operator.
type Op int8

const (
	opNone Op = iota

	Add // left + right
	Sub // left - right
	Mul // left × right
	Div // left ÷ right
	Pow // left ^ right
)

// Precedence returns the binding tier of the operator. Higher is more
// binding. The zero Op has precedence 0.
func (op Op) Precedence() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	case Pow:
		return 3
	default:
		return 0
	}
}

// RightAssoc returns whether chains of the operator group from the right.
func (op Op) RightAssoc() bool {
	return op == Pow
}

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "×"
	case Div:
		return "÷"
	case Pow:
		return "^"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Node is a node in the abstract syntax tree of an expression. A Node is
// either an Operand or a *BinaryOp.
type Node interface {
	// Eval computes the value of the subtree.
	Eval() float64
	// String writes the subtree with each node bracketed, alternating round
	// and square brackets by depth.
	String() string

	fmt(b *strings.Builder, square bool)
}

// Operand is a leaf holding a number.
type Operand float64

// BinaryOp applies Op to the values of Left and Right. A BinaryOp built by
// Build always has two non-nil children that belong to it alone.
type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
}

var (
	_ Node = Operand(0)
	_ Node = (*BinaryOp)(nil)
)

func (o Operand) String() string {
	var b strings.Builder
	o.fmt(&b, false)
	return b.String()
}

func (o Operand) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	b.WriteString(strconv.FormatFloat(float64(o), 'g', -1, 64))
	b.WriteByte(r)
}

func (n *BinaryOp) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *BinaryOp) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.Left == nil || n.Right == nil {
		// Invalid nodes use invalid characters.
		b.WriteString("$" + n.Op.String() + "$")
		return
	}
	n.Left.fmt(b, !square)
	b.WriteString(" " + n.Op.String() + " ")
	n.Right.fmt(b, !square)
}
