/*
File    : minilang/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/minilang/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgram_VarAndSet(t *testing.T) {
	prog, err := ParseProgram(`var x = 1; set x = 2;`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	v, ok := prog.Statements[0].(*VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)
	assert.IsType(t, &IntLiteral{}, v.Init)

	s, ok := prog.Statements[1].(*SetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", s.Name)
}

func TestParseProgram_VarWithoutInitializer(t *testing.T) {
	prog, err := ParseProgram(`var x;`)
	require.NoError(t, err)
	v := prog.Statements[0].(*VarStmt)
	assert.Nil(t, v.Init)
}

func TestParseProgram_PowerIsRightAssociative(t *testing.T) {
	prog, err := ParseProgram(`print 2 ^ 2 ^ 3;`)
	require.NoError(t, err)
	p := prog.Statements[0].(*PrintStmt)
	top := p.Value.(*BinaryExpr)
	require.Equal(t, lexer.CARET, top.Op)
	assert.IsType(t, &IntLiteral{}, top.Left)
	right := top.Right.(*BinaryExpr)
	assert.Equal(t, lexer.CARET, right.Op)
}

func TestParseProgram_TernaryIsRightAssociativeAndLowestPrecedence(t *testing.T) {
	prog, err := ParseProgram(`print 1 = 1 ? 1 + 2 : 1 / 0;`)
	require.NoError(t, err)
	p := prog.Statements[0].(*PrintStmt)
	tern := p.Value.(*TernaryExpr)
	assert.IsType(t, &BinaryExpr{}, tern.Cond)
	assert.IsType(t, &BinaryExpr{}, tern.Then)
	assert.IsType(t, &BinaryExpr{}, tern.Else)

	prog, err = ParseProgram(`print a ? b : c ? d : e;`)
	require.NoError(t, err)
	outer := prog.Statements[0].(*PrintStmt).Value.(*TernaryExpr)
	assert.IsType(t, &NameExpr{}, outer.Then)
	assert.IsType(t, &TernaryExpr{}, outer.Else)
}

func TestParseProgram_IfElifElse(t *testing.T) {
	prog, err := ParseProgram(`if a { print 1; } elif b { print 2; } else { print 3; }`)
	require.NoError(t, err)
	top := prog.Statements[0].(*IfStmt)
	elif, ok := top.Else.(*IfStmt)
	require.True(t, ok)
	elseBlock, ok := elif.Else.(*Block)
	require.True(t, ok)
	require.Len(t, elseBlock.Statements, 1)
}

func TestParseProgram_WhileWithThen(t *testing.T) {
	prog, err := ParseProgram(`while false {} then { print 2; }`)
	require.NoError(t, err)
	w := prog.Statements[0].(*WhileStmt)
	require.Len(t, w.Then.Statements, 1)
}

func TestParseProgram_WhileWithoutThenYieldsEmptyBlock(t *testing.T) {
	prog, err := ParseProgram(`while true { break; }`)
	require.NoError(t, err)
	w := prog.Statements[0].(*WhileStmt)
	assert.Empty(t, w.Then.Statements)
}

func TestParseProgram_ForLoopHeader(t *testing.T) {
	prog, err := ParseProgram(`for i = 0; i # 5; i = i + 1 { print i; }`)
	require.NoError(t, err)
	f := prog.Statements[0].(*ForStmt)
	assert.Equal(t, "i", f.InitName)
	assert.Equal(t, "i", f.UpdateName)
}

func TestParseProgram_DefDesugarsToVarFunc(t *testing.T) {
	prog, err := ParseProgram(`def sum(a,b){ return a+b; }`)
	require.NoError(t, err)
	v := prog.Statements[0].(*VarStmt)
	assert.Equal(t, "sum", v.Name)
	lit, ok := v.Init.(*FuncLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lit.Params)
}

func TestParseProgram_CallChaining(t *testing.T) {
	prog, err := ParseProgram(`print make_adder(2)(3);`)
	require.NoError(t, err)
	p := prog.Statements[0].(*PrintStmt)
	outer := p.Value.(*CallExpr)
	inner, ok := outer.Callee.(*CallExpr)
	require.True(t, ok)
	assert.Equal(t, "make_adder", inner.Callee.(*NameExpr).Name)
}

func TestParseProgram_ReturnWithoutValue(t *testing.T) {
	prog, err := ParseProgram(`def f(){ return; }`)
	require.NoError(t, err)
	v := prog.Statements[0].(*VarStmt)
	lit := v.Init.(*FuncLiteral)
	ret := lit.Body.Statements[0].(*ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParseProgram_ErrorMissingClosingBrace(t *testing.T) {
	_, err := ParseProgram(`if a { print 1;`)
	require.Error(t, err)
	assert.Equal(t, "Expected `}`, found `EOF`.", err.Error())
}

func TestParseProgram_ErrorMissingSemicolon(t *testing.T) {
	_, err := ParseProgram(`var x = 1`)
	require.Error(t, err)
	assert.Equal(t, "Expected `;`, found `EOF`.", err.Error())
}

func TestParseProgram_ErrorExpectedName(t *testing.T) {
	_, err := ParseProgram(`var 1 = 2;`)
	require.Error(t, err)
	assert.Equal(t, "Expected a name, found `1`.", err.Error())
}

func TestParseProgram_ErrorExpectedParamName(t *testing.T) {
	_, err := ParseProgram(`def f(1){ return; }`)
	require.Error(t, err)
	assert.Equal(t, "Name expected, found `1`.", err.Error())
}

func TestParseProgram_ErrorUnexpectedToken(t *testing.T) {
	_, err := ParseProgram(`print ;`)
	require.Error(t, err)
	assert.Equal(t, "Unexpected token `;`.", err.Error())
}

func TestParseProgram_StopsAtFirstError(t *testing.T) {
	_, err := ParseProgram(`var 1 = 2; var 3 = 4;`)
	require.Error(t, err)
	assert.Equal(t, "Expected a name, found `1`.", err.Error())
}
