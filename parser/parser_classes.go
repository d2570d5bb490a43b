/*
File    : nimble/parser/parser_classes.go
*/
package parser

import "github.com/nimblelang/nimble/lexer"

// classDeclaration parses `class NAME (: SUPER)? { method* }`.
func (p *Parser) classDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect class name")
	if err != nil {
		return nil, err
	}

	var superclass *Variable
	if p.match(lexer.COLON) {
		if _, err := p.consume(lexer.IDENTIFIER, "Expect superclass name"); err != nil {
			return nil, err
		}
		superclass = &Variable{Name: p.previous()}
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before class body"); err != nil {
		return nil, err
	}

	var methods []*FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, stmt.(*FunctionStmt))
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body"); err != nil {
		return nil, err
	}

	return &Class{Name: name, Superclass: superclass, Methods: methods}, nil
}
