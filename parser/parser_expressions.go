/*
File    : nimble/parser/parser_expressions.go
*/
package parser

import "github.com/nimblelang/nimble/lexer"

const maxArgs = 255

// expression is the entry point into the precedence ladder (low to
// high): assignment, or, and, equality, comparison, exponent (right
// associative), term, factor, unary, call/subscript/property, primary.
func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *Variable:
			return &Assign{Name: target.Name, Value: value}, nil
		case *Get:
			return &Set{Object: target.Object, Name: target.Name, Value: value}, nil
		case *Subscript:
			target.Value = value
			return target, nil
		}
		p.addError(equals, "Invalid assignment target")
	}
	return expr, nil
}

func (p *Parser) or() (Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.exponent()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right, err := p.exponent()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// exponent is right-associative: a ** b ** c == a ** (b ** c).
func (p *Parser) exponent() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.STAR_STAR) {
		op := p.previous()
		right, err := p.exponent()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: op, Right: right}, nil
	}
	return p.call()
}

// call parses postfix call/subscript/property forms, left-associatively:
// primary()[idx].name(...) etc.
func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.DOT):
			name, err := p.consume(lexer.IDENTIFIER, "Expect property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &Get{Object: expr, Name: name}
		case p.match(lexer.LEFT_BRACKET):
			bracket := p.previous()
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.RIGHT_BRACKET, "Expect ']' after index"); err != nil {
				return nil, err
			}
			expr = &Subscript{Target: expr, Bracket: bracket, Index: index}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.addError(p.peek(), "Can't have more than 255 arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &Call{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(lexer.FALSE):
		return &Literal{Value: false}, nil
	case p.match(lexer.TRUE):
		return &Literal{Value: true}, nil
	case p.match(lexer.NIL):
		return &Literal{Value: nil}, nil
	case p.match(lexer.NUMBER, lexer.STRING):
		return &Literal{Value: p.previous().Literal}, nil
	case p.match(lexer.SUPER):
		keyword := p.previous()
		if _, err := p.consume(lexer.DOT, "Expect '.' after 'super'"); err != nil {
			return nil, err
		}
		method, err := p.consume(lexer.IDENTIFIER, "Expect superclass method name")
		if err != nil {
			return nil, err
		}
		return &Super{Keyword: keyword, Method: method}, nil
	case p.match(lexer.THIS):
		return &This{Keyword: p.previous()}, nil
	case p.match(lexer.IDENTIFIER):
		return &Variable{Name: p.previous()}, nil
	case p.match(lexer.FUN):
		return p.functionBody("function")
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &Grouping{Inner: expr}, nil
	case p.match(lexer.LEFT_BRACKET):
		return p.listLiteral()
	}

	tok := p.peek()
	p.addError(tok, "Expect expression")
	return nil, &parseError{token: tok}
}

func (p *Parser) listLiteral() (Expr, error) {
	var elements []Expr
	if !p.check(lexer.RIGHT_BRACKET) {
		for {
			if len(elements) >= maxArgs {
				p.addError(p.peek(), "Can't have more than 255 elements")
			}
			el, err := p.expression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_BRACKET, "Expect ']' after list elements"); err != nil {
		return nil, err
	}
	return &ListExpr{Elements: elements}, nil
}
