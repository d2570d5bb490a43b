/*
File    : nimble/parser/parser_loops.go
*/
package parser

import "github.com/nimblelang/nimble/lexer"

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition"); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.statement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}
	return &While{Condition: cond, Body: body}, nil
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` at parse time, per spec §4.2.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses"); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.statement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &Block{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}

	if condition == nil {
		condition = &Literal{Value: true}
	}
	body = &While{Condition: condition, Body: body}

	if initializer != nil {
		body = &Block{Statements: []Stmt{initializer, body}}
	}

	return body, nil
}
