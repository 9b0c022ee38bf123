/*
File    : minilang/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/minilang/lexer"
)

// parseExpression is the grammar's `expression` rule: everything
// starts at ternary, the lowest precedence level.
func (par *Parser) parseExpression() (Expr, error) {
	return par.parseTernary()
}

// parseTernary parses `or-level ['?' ternary ':' ternary]`,
// right-associative by recursing into itself for both branches.
func (par *Parser) parseTernary() (Expr, error) {
	tok := par.CurrToken
	cond, err := par.parseOr()
	if err != nil {
		return nil, err
	}
	if par.CurrToken.Type != lexer.QUESTION {
		return cond, nil
	}
	par.advance()

	then, err := par.parseTernary()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.COLON); err != nil {
		return nil, err
	}
	els, err := par.parseTernary()
	if err != nil {
		return nil, err
	}
	return &TernaryExpr{Token: tok, Cond: cond, Then: then, Else: els}, nil
}

// parseOr parses left-associative `&`-level chains of `|`.
func (par *Parser) parseOr() (Expr, error) {
	left, err := par.parseAnd()
	if err != nil {
		return nil, err
	}
	for par.CurrToken.Type == lexer.PIPE {
		tok := par.CurrToken
		par.advance()
		right, err := par.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &LogicalExpr{Token: tok, Op: lexer.PIPE, Left: left, Right: right}
	}
	return left, nil
}

// parseAnd parses left-associative chains of `&`.
func (par *Parser) parseAnd() (Expr, error) {
	left, err := par.parseEquality()
	if err != nil {
		return nil, err
	}
	for par.CurrToken.Type == lexer.AMP {
		tok := par.CurrToken
		par.advance()
		right, err := par.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &LogicalExpr{Token: tok, Op: lexer.AMP, Left: left, Right: right}
	}
	return left, nil
}

// parseEquality parses left-associative chains of `=` and `#`.
func (par *Parser) parseEquality() (Expr, error) {
	left, err := par.parseComparison()
	if err != nil {
		return nil, err
	}
	for par.CurrToken.Type == lexer.ASSIGN || par.CurrToken.Type == lexer.HASH {
		tok := par.CurrToken
		op := tok.Type
		par.advance()
		right, err := par.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseComparison parses left-associative chains of `< <= > >=`.
func (par *Parser) parseComparison() (Expr, error) {
	left, err := par.parseAdditive()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(par.CurrToken.Type) {
		tok := par.CurrToken
		op := tok.Type
		par.advance()
		right, err := par.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func isComparisonOp(t lexer.TokenType) bool {
	return t == lexer.LT || t == lexer.LE || t == lexer.GT || t == lexer.GE
}

// parseAdditive parses left-associative chains of `+ -`.
func (par *Parser) parseAdditive() (Expr, error) {
	left, err := par.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for par.CurrToken.Type == lexer.PLUS || par.CurrToken.Type == lexer.MINUS {
		tok := par.CurrToken
		op := tok.Type
		par.advance()
		right, err := par.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseMultiplicative parses left-associative chains of `* /`.
func (par *Parser) parseMultiplicative() (Expr, error) {
	left, err := par.parsePower()
	if err != nil {
		return nil, err
	}
	for par.CurrToken.Type == lexer.STAR || par.CurrToken.Type == lexer.SLASH {
		tok := par.CurrToken
		op := tok.Type
		par.advance()
		right, err := par.parsePower()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parsePower parses right-associative `^` by recursing into itself
// for the right operand.
func (par *Parser) parsePower() (Expr, error) {
	left, err := par.parseUnary()
	if err != nil {
		return nil, err
	}
	if par.CurrToken.Type != lexer.CARET {
		return left, nil
	}
	tok := par.CurrToken
	par.advance()
	right, err := par.parsePower()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Token: tok, Op: lexer.CARET, Left: left, Right: right}, nil
}

// parseUnary parses prefix `-`; everything else falls through to call.
func (par *Parser) parseUnary() (Expr, error) {
	if par.CurrToken.Type == lexer.MINUS {
		tok := par.CurrToken
		par.advance()
		right, err := par.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Token: tok, Op: lexer.MINUS, Right: right}, nil
	}
	return par.parseCall()
}

// parseCall parses a primary followed by zero or more chained `(args)`
// applications, left-associative.
func (par *Parser) parseCall() (Expr, error) {
	expr, err := par.parsePrimary()
	if err != nil {
		return nil, err
	}
	for par.CurrToken.Type == lexer.LPAREN {
		tok := par.CurrToken
		par.advance()
		var args []Expr
		for par.CurrToken.Type != lexer.RPAREN {
			arg, err := par.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if par.CurrToken.Type == lexer.COMMA {
				par.advance()
				continue
			}
			break
		}
		if err := par.expectAdvance(lexer.RPAREN); err != nil {
			return nil, err
		}
		expr = &CallExpr{Token: tok, Callee: expr, Args: args}
	}
	return expr, nil
}

// parsePrimary parses literals, names, parenthesized expressions, and
// function literals; anything else is an "Unexpected token" failure.
func (par *Parser) parsePrimary() (Expr, error) {
	tok := par.CurrToken
	switch tok.Type {
	case lexer.LPAREN:
		par.advance()
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := par.expectAdvance(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.FUNC:
		par.advance()
		params, err := par.parseParamList()
		if err != nil {
			return nil, err
		}
		body, err := par.parseBlock()
		if err != nil {
			return nil, err
		}
		return &FuncLiteral{Token: tok, Params: params, Body: body}, nil
	case lexer.INT:
		par.advance()
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Unexpected token `%s`.", tok.Literal)
		}
		return &IntLiteral{Token: tok, Value: value}, nil
	case lexer.TRUE:
		par.advance()
		return &BoolLiteral{Token: tok, Value: true}, nil
	case lexer.FALSE:
		par.advance()
		return &BoolLiteral{Token: tok, Value: false}, nil
	case lexer.NULL:
		par.advance()
		return &NullLiteral{Token: tok}, nil
	case lexer.IDENT:
		par.advance()
		return &NameExpr{Token: tok, Name: tok.Literal}, nil
	default:
		return nil, fmt.Errorf("Unexpected token `%s`.", par.tokenText(tok))
	}
}
