/*
File    : minilang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a minilang token stream into an AST by recursive
// descent, one statement- or precedence-level method per grammar rule
// (parser_statements.go, parser_expressions.go) rather than a single
// sprawling function. The parser stops at the first structural failure
// and returns it immediately: diagnostics are single authoritative
// one-liners, and a list of follow-on errors after a bad token is
// mostly recovery noise.
package parser

import (
	"fmt"

	"github.com/akashmaji946/minilang/lexer"
)

// Parser holds a current/next token window over the lexer driving it.
// Every dispatch decision the grammar needs fits in CurrToken; keeping
// NextToken primed means advance never has to special-case the first
// token.
type Parser struct {
	lex *lexer.Lexer

	CurrToken lexer.Token
	NextToken lexer.Token
}

// New creates a Parser over src with its first two tokens already
// primed.
func New(src string) *Parser {
	par := &Parser{lex: lexer.NewLexer(src)}
	par.advance()
	par.advance()
	return par
}

// advance slides the lookahead window forward by one token.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.lex.NextToken()
}

// expectAdvance requires CurrToken to have type want; on success it
// advances past it, on failure it returns the "Expected `X`, found
// `Y`." diagnostic.
func (par *Parser) expectAdvance(want lexer.TokenType) error {
	if par.CurrToken.Type != want {
		return fmt.Errorf("Expected `%s`, found `%s`.", want, par.tokenText(par.CurrToken))
	}
	par.advance()
	return nil
}

// tokenText renders a token the way diagnostics quote it: the literal
// text for everything but EOF, which has none.
func (par *Parser) tokenText(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return "EOF"
	}
	return tok.Literal
}

// ParseProgram parses the whole token stream into a Program, or
// returns the first structural error encountered.
func ParseProgram(src string) (*Program, error) {
	par := New(src)
	prog := &Program{}
	for par.CurrToken.Type != lexer.EOF {
		stmt, err := par.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}
