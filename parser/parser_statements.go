/*
File    : nimble/parser/parser_statements.go
*/
package parser

import "github.com/nimblelang/nimble/lexer"

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.BREAK):
		return p.breakStatement()
	case p.match(lexer.IMPORT):
		return p.importStatement()
	case p.match(lexer.LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &Block{Statements: stmts}, nil
	}
	return p.expressionStatement()
}

func (p *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) printStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after value"); err != nil {
		return nil, err
	}
	return &Print{Expression: expr}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name")
	if err != nil {
		return nil, err
	}
	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	var err error
	if !p.check(lexer.SEMICOLON) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after return value"); err != nil {
		return nil, err
	}
	return &Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) breakStatement() (Stmt, error) {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.addError(keyword, "Must be inside a loop to use 'break'")
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after 'break'"); err != nil {
		return nil, err
	}
	return &Break{Keyword: keyword}, nil
}

func (p *Parser) importStatement() (Stmt, error) {
	keyword := p.previous()
	path, err := p.consume(lexer.STRING, "Expect a string path after 'import'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after import path"); err != nil {
		return nil, err
	}
	return &Import{Keyword: keyword, Path: path.Literal.(string)}, nil
}
