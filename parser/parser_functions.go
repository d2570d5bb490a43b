/*
File    : nimble/parser/parser_functions.go
*/
package parser

import (
	"fmt"

	"github.com/nimblelang/nimble/lexer"
)

// function parses `fun NAME(params){body}` and desugars it to a
// FunctionStmt wrapping an anonymous FunctionExpr.
func (p *Parser) function(kind string) (Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name", kind))
	if err != nil {
		return nil, err
	}
	fn, err := p.functionBody(kind)
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Name: name, Fn: fn.(*FunctionExpr)}, nil
}

// functionBody parses `(params){body}`, used both for named declarations
// (after the name token is consumed) and for anonymous `fun(...){...}`
// expressions.
func (p *Parser) functionBody(kind string) (Expr, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name", kind)); err != nil {
		return nil, err
	}
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.addError(p.peek(), "Can't have more than 255 parameters")
			}
			param, err := p.consume(lexer.IDENTIFIER, "Expect parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body", kind)); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionExpr{Params: params, Body: body}, nil
}
