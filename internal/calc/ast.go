package calc

import (
	"fmt"
	"math"
)

type node interface {
	eval(mode AngleMode) (float64, error)
}

type numberNode float64

func (n numberNode) eval(AngleMode) (float64, error) { return float64(n), nil }

type negateNode struct{ x node }

func (n negateNode) eval(mode AngleMode) (float64, error) {
	v, err := n.x.eval(mode)
	return -v, err
}

type binaryNode struct {
	op          tokenKind
	left, right node
}

func (n binaryNode) eval(mode AngleMode) (float64, error) {
	x, err := n.left.eval(mode)
	if err != nil {
		return 0, err
	}
	y, err := n.right.eval(mode)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case tokPlus:
		return x + y, nil
	case tokMinus:
		return x - y, nil
	case tokStar:
		return x * y, nil
	case tokSlash:
		return x / y, nil
	case tokPow:
		return math.Pow(x, y), nil
	}
	return 0, fmt.Errorf("unsupported operator %s", n.op)
}

type percentNode struct{ x node }

func (n percentNode) eval(mode AngleMode) (float64, error) {
	v, err := n.x.eval(mode)
	return v / 100, err
}

type factorialNode struct{ x node }

func (n factorialNode) eval(mode AngleMode) (float64, error) {
	v, err := n.x.eval(mode)
	if err != nil {
		return 0, err
	}
	return Factorial(v), nil
}

type callNode struct {
	fn   *function
	args []node
}

func (n callNode) eval(mode AngleMode) (float64, error) {
	if len(n.args) != n.fn.arity {
		return 0, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrArity, n.fn.name, n.fn.arity, len(n.args))
	}

	vals := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(mode)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	return n.fn.fn(mode, vals), nil
}
