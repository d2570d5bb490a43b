/*
File    : nimble/parser/parser_conditionals.go
*/
package parser

import "github.com/nimblelang/nimble/lexer"

func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &If{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}
