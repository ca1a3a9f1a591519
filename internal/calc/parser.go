package calc

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrArity             = errors.New("wrong number of arguments")
)

// SyntaxError reports where a malformed expression stopped parsing.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.unexpected(t, "expected "+kind.String())
	}
	return t, nil
}

func (p *parser) unexpected(t token, want string) error {
	got := t.kind.String()
	if t.text != "" {
		got = fmt.Sprintf("%q", t.text)
	}
	msg := "unexpected " + got
	if want != "" {
		msg += ", " + want
	}
	return &SyntaxError{Pos: t.pos, Msg: msg}
}

func (p *parser) parse() (node, error) {
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.unexpected(t, "")
	}
	return n, nil
}

// expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// term := unary (('*'|'/') unary)*
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// unary := ('+'|'-') unary | power
func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		return p.parseUnary()
	case tokMinus:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negateNode{x: x}, nil
	}
	return p.parsePower()
}

// power := postfix ('^' unary)?   right associative, binds tighter than unary minus
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: tokPow, left: base, right: exp}, nil
}

// postfix := number ('%'|'!')? | '(' expr ')' '!'? | call | constant
func (p *parser) parsePostfix() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		n := node(numberNode(t.num))
		switch p.peek().kind {
		case tokPercent:
			p.next()
			n = percentNode{x: n}
		case tokBang:
			p.next()
			n = factorialNode{x: n}
		}
		return n, p.rejectPostfix()

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		if p.peek().kind == tokBang {
			p.next()
			inner = factorialNode{x: inner}
		}
		return inner, p.rejectPostfix()

	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t)
		}
		v, ok := constants[t.text]
		if !ok {
			return nil, fmt.Errorf("%w %q at %d", ErrUnknownIdentifier, t.text, t.pos)
		}
		return numberNode(v), p.rejectPostfix()
	}

	return nil, p.unexpected(t, "expected a number, constant, function or '('")
}

// parseCall reads name(args). Postfix operators never follow a call, so
// sqrt(4)! is rejected.
func (p *parser) parseCall(name token) (node, error) {
	fn, ok := functions[name.text]
	if !ok {
		return nil, fmt.Errorf("%w %q at %d", ErrUnknownIdentifier, name.text, name.pos)
	}
	p.next() // '('

	var args []node
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}

	return callNode{fn: fn, args: args}, p.rejectPostfix()
}

// rejectPostfix stops postfix operators from stacking or attaching where they
// have no operand.
func (p *parser) rejectPostfix() error {
	if t := p.peek(); t.kind == tokPercent || t.kind == tokBang {
		return p.unexpected(t, "")
	}
	return nil
}
