/*
File    : minilang/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/minilang/lexer"
)

// parseStatement dispatches on the lookahead token.
func (par *Parser) parseStatement() (Stmt, error) {
	switch par.CurrToken.Type {
	case lexer.LBRACE:
		return par.parseBlock()
	case lexer.VAR, lexer.SET:
		return par.parseVarSet()
	case lexer.IF:
		return par.parseIf()
	case lexer.WHILE:
		return par.parseWhile()
	case lexer.FOR:
		return par.parseFor()
	case lexer.BREAK:
		return par.parseBreak()
	case lexer.CONTINUE:
		return par.parseContinue()
	case lexer.DEF:
		return par.parseDef()
	case lexer.RETURN:
		return par.parseReturn()
	case lexer.PRINT:
		return par.parsePrint()
	default:
		return par.parseExprStmt()
	}
}

// parseName consumes an identifier token and returns its literal, or
// the "Expected a name" diagnostic if the lookahead is not one.
func (par *Parser) parseName() (string, error) {
	if par.CurrToken.Type != lexer.IDENT {
		return "", fmt.Errorf("Expected a name, found `%s`.", par.tokenText(par.CurrToken))
	}
	name := par.CurrToken.Literal
	par.advance()
	return name, nil
}

// parseParamName is parseName's counterpart for a function's
// parameter list, which gets its own diagnostic message.
func (par *Parser) parseParamName() (string, error) {
	if par.CurrToken.Type != lexer.IDENT {
		return "", fmt.Errorf("Name expected, found `%s`.", par.tokenText(par.CurrToken))
	}
	name := par.CurrToken.Literal
	par.advance()
	return name, nil
}

// parseBlock parses `{ statements... }`.
func (par *Parser) parseBlock() (*Block, error) {
	tok := par.CurrToken
	if err := par.expectAdvance(lexer.LBRACE); err != nil {
		return nil, err
	}
	block := &Block{Token: tok}
	for par.CurrToken.Type != lexer.RBRACE {
		if par.CurrToken.Type == lexer.EOF {
			return nil, fmt.Errorf("Expected `%s`, found `%s`.", lexer.RBRACE, par.tokenText(par.CurrToken))
		}
		stmt, err := par.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	par.advance()
	return block, nil
}

// parseVarSet parses `var NAME [= expr];` and `set NAME = expr;`.
func (par *Parser) parseVarSet() (Stmt, error) {
	tok := par.CurrToken
	isSet := tok.Type == lexer.SET
	par.advance()

	name, err := par.parseName()
	if err != nil {
		return nil, err
	}

	var init Expr
	if isSet || par.CurrToken.Type != lexer.SEMI {
		if err := par.expectAdvance(lexer.ASSIGN); err != nil {
			return nil, err
		}
		init, err = par.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}

	if isSet {
		return &SetStmt{Token: tok, Name: name, Value: init}, nil
	}
	return &VarStmt{Token: tok, Name: name, Init: init}, nil
}

// parseIf parses `if expr { ... } [elif if | else { ... }]`.
func (par *Parser) parseIf() (Stmt, error) {
	tok := par.CurrToken
	par.advance()

	cond, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := par.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseStmt Stmt
	switch par.CurrToken.Type {
	case lexer.ELIF:
		elseStmt, err = par.parseIf()
		if err != nil {
			return nil, err
		}
	case lexer.ELSE:
		par.advance()
		elseBlock, err := par.parseBlock()
		if err != nil {
			return nil, err
		}
		elseStmt = elseBlock
	}

	return &IfStmt{Token: tok, Cond: cond, Then: then, Else: elseStmt}, nil
}

// parseWhile parses `while expr { ... } [then { ... }]`.
func (par *Parser) parseWhile() (Stmt, error) {
	tok := par.CurrToken
	par.advance()

	cond, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := par.parseBlock()
	if err != nil {
		return nil, err
	}

	thenBlock := &Block{Token: tok}
	if par.CurrToken.Type == lexer.THEN {
		par.advance()
		thenBlock, err = par.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &WhileStmt{Token: tok, Cond: cond, Body: body, Then: thenBlock}, nil
}

// parseFor parses `for NAME = expr; cond; NAME = expr { ... }`.
func (par *Parser) parseFor() (Stmt, error) {
	tok := par.CurrToken
	par.advance()

	initName, err := par.parseName()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.ASSIGN); err != nil {
		return nil, err
	}
	initExpr, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}

	cond, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}

	updateName, err := par.parseName()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.ASSIGN); err != nil {
		return nil, err
	}
	updateExpr, err := par.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := par.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ForStmt{
		Token: tok, InitName: initName, InitExpr: initExpr,
		Cond: cond, UpdateName: updateName, UpdateExpr: updateExpr,
		Body: body,
	}, nil
}

// parseBreak parses `break;`.
func (par *Parser) parseBreak() (Stmt, error) {
	tok := par.CurrToken
	par.advance()
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}
	return &BreakStmt{Token: tok}, nil
}

// parseContinue parses `continue;`.
func (par *Parser) parseContinue() (Stmt, error) {
	tok := par.CurrToken
	par.advance()
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ContinueStmt{Token: tok}, nil
}

// parseDef parses `def name(params) { body }` and desugars it to
// `var name = func(params) { body };`.
func (par *Parser) parseDef() (Stmt, error) {
	tok := par.CurrToken
	par.advance()

	name, err := par.parseName()
	if err != nil {
		return nil, err
	}

	funcTok := par.CurrToken
	params, err := par.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := par.parseBlock()
	if err != nil {
		return nil, err
	}

	literal := &FuncLiteral{Token: funcTok, Params: params, Body: body}
	return &VarStmt{Token: tok, Name: name, Init: literal}, nil
}

// parseParamList parses `(NAME, NAME, ...)`, shared by `def` and
// `func` literals.
func (par *Parser) parseParamList() ([]string, error) {
	if err := par.expectAdvance(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for par.CurrToken.Type != lexer.RPAREN {
		name, err := par.parseParamName()
		if err != nil {
			return nil, err
		}
		params = append(params, name)
		if par.CurrToken.Type == lexer.COMMA {
			par.advance()
			continue
		}
		break
	}
	if err := par.expectAdvance(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseReturn parses `return [expr];`.
func (par *Parser) parseReturn() (Stmt, error) {
	tok := par.CurrToken
	par.advance()

	var value Expr
	if par.CurrToken.Type != lexer.SEMI {
		var err error
		value, err = par.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ReturnStmt{Token: tok, Value: value}, nil
}

// parsePrint parses `print expr;`.
func (par *Parser) parsePrint() (Stmt, error) {
	tok := par.CurrToken
	par.advance()

	value, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}
	return &PrintStmt{Token: tok, Value: value}, nil
}

// parseExprStmt parses `expr;`.
func (par *Parser) parseExprStmt() (Stmt, error) {
	tok := par.CurrToken
	value, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ExprStmt{Token: tok, Value: value}, nil
}
