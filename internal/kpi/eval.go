package kpi

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// evaluate parses and computes an arithmetic expression over + - * / and
// parentheses. No dynamic evaluation facility is involved; any fault,
// including division by zero, returns an error.
func evaluate(expr string) (decimal.Decimal, error) {
	p := &parser{input: expr}
	v, err := p.expression()
	if err != nil {
		return decimal.Zero, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return decimal.Zero, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n' || p.input[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// expression := term (('+' | '-') term)*
func (p *parser) expression() (decimal.Decimal, error) {
	v, err := p.term()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return v, nil
		}
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return decimal.Zero, err
		}
		if c == '+' {
			v = v.Add(rhs)
		} else {
			v = v.Sub(rhs)
		}
	}
}

// term := factor (('*' | '/') factor)*
func (p *parser) term() (decimal.Decimal, error) {
	v, err := p.factor()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return v, nil
		}
		p.pos++
		rhs, err := p.factor()
		if err != nil {
			return decimal.Zero, err
		}
		if c == '*' {
			v = v.Mul(rhs)
		} else {
			if rhs.IsZero() {
				return decimal.Zero, fmt.Errorf("division by zero")
			}
			v = v.Div(rhs)
		}
	}
}

// factor := ('+' | '-') factor | '(' expression ')' | number
func (p *parser) factor() (decimal.Decimal, error) {
	c, ok := p.peek()
	if !ok {
		return decimal.Zero, fmt.Errorf("unexpected end of expression")
	}
	switch {
	case c == '+':
		p.pos++
		return p.factor()
	case c == '-':
		p.pos++
		v, err := p.factor()
		return v.Neg(), err
	case c == '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return decimal.Zero, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return decimal.Zero, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	default:
		return p.number()
	}
}

func (p *parser) number() (decimal.Decimal, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		return decimal.Zero, fmt.Errorf("expected number at position %d", start)
	}
	lit := strings.TrimSpace(p.input[start:p.pos])
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad number %q: %w", lit, err)
	}
	return d, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
