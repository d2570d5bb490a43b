/*
File    : nimble/parser/parser.go
*/
package parser

import (
	"fmt"

	"github.com/nimblelang/nimble/lexer"
)

// Parser is a recursive-descent parser over a token stream. It never
// panics on a malformed program: parse errors are appended to Errors and
// panic-mode recovery (synchronize) discards tokens until a safe resume
// point, mirroring the lexer's own "report and continue" contract.
type Parser struct {
	tokens  []lexer.Token
	current int
	Errors  []string

	loopDepth int
}

// NewParser scans src to completion and returns a Parser positioned at
// its first token. Lexer errors (unterminated strings, unexpected
// characters) are folded into Parser.Errors so callers only need to
// check one error list.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	var toks []lexer.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == lexer.EOF_TYPE {
			break
		}
	}
	par := &Parser{tokens: toks, Errors: append([]string{}, lex.Errors...)}
	return par
}

func (p *Parser) HasErrors() bool      { return len(p.Errors) > 0 }
func (p *Parser) GetErrors() []string  { return p.Errors }

func (p *Parser) addError(tok lexer.Token, msg string) {
	where := fmt.Sprintf("'%s'", tok.Lexeme)
	if tok.Type == lexer.EOF_TYPE {
		where = "end"
	}
	p.Errors = append(p.Errors, fmt.Sprintf("[line %d] Error at %s: %s", tok.Line, where, msg))
}

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF_TYPE }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF_TYPE
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// parseError records a diagnostic and returns a sentinel error used to
// unwind out of the current declaration/statement to synchronize().
type parseError struct{ token lexer.Token }

func (e *parseError) Error() string { return "parse error" }

func (p *Parser) consume(t lexer.TokenType, msg string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	tok := p.peek()
	p.addError(tok, msg)
	return lexer.Token{}, &parseError{token: tok}
}

// synchronize discards tokens until just after a ';' or at the start of
// the next statement keyword, so the parser can keep collecting errors
// after a malformed declaration/statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}

// Parse parses the full program: a sequence of declarations.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// ParseREPL implements the parser's dual-mode REPL entry point. If the
// input ends in an expression statement (whose trailing ';' may be
// omitted), that expression is returned as expr and stmts holds the
// declarations before it, so the REPL can run them and then echo the
// expression's value; otherwise expr is nil and stmts is the full list.
func (p *Parser) ParseREPL() (stmts []Stmt, expr Expr) {
	for !p.isAtEnd() {
		start, nErrs := p.current, len(p.Errors)
		s := p.declaration()
		if s == nil {
			// Re-parse the failed declaration as a bare expression that
			// runs to the end of input (a final expression without ';').
			end, errs := p.current, p.Errors
			p.current, p.Errors = start, append([]string{}, errs[:nErrs]...)
			if e, err := p.expression(); err == nil && p.isAtEnd() && len(p.Errors) == nErrs {
				return stmts, e
			}
			p.current, p.Errors = end, errs
			continue
		}
		stmts = append(stmts, s)
		if p.isAtEnd() {
			if es, ok := s.(*ExpressionStmt); ok {
				return stmts[:len(stmts)-1], es.Expression
			}
		}
	}
	return stmts, nil
}

func (p *Parser) declaration() Stmt {
	var stmt Stmt
	var err error
	switch {
	case p.match(lexer.VAR):
		stmt, err = p.varDeclaration()
	case p.match(lexer.FUN):
		stmt, err = p.function("function")
	case p.match(lexer.CLASS):
		stmt, err = p.classDeclaration()
	default:
		stmt, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}
