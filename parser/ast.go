/*
File    : minilang/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/minilang/lexer"

// Node is the common root of every AST node: a tagged tree with one
// concrete Go type per node kind instead of a single string-tagged
// struct.
type Node interface {
	TokenLiteral() string
}

// Stmt is any statement-position node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is any expression-position node.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string { return "program" }

// Block is a sequence of statements that introduces a new scope.
type Block struct {
	Token      lexer.Token
	Statements []Stmt
}

func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) stmtNode()            {}

// VarStmt declares a new name in the innermost scope.
type VarStmt struct {
	Token lexer.Token
	Name  string
	Init  Expr // nil if the declaration had no initializer
}

func (v *VarStmt) TokenLiteral() string { return v.Token.Literal }
func (v *VarStmt) stmtNode()            {}

// SetStmt assigns to an existing binding.
type SetStmt struct {
	Token lexer.Token
	Name  string
	Value Expr
}

func (s *SetStmt) TokenLiteral() string { return s.Token.Literal }
func (s *SetStmt) stmtNode()            {}

// IfStmt is a conditional. Else is nil, a *Block (plain else), or a
// nested *IfStmt (an elif chain).
type IfStmt struct {
	Token lexer.Token
	Cond  Expr
	Then  *Block
	Else  Stmt
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) stmtNode()            {}

// WhileStmt is a conditional loop. Then runs once iff the loop exits
// because Cond became falsy, not because of a break.
type WhileStmt struct {
	Token lexer.Token
	Cond  Expr
	Body  *Block
	Then  *Block
}

func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) stmtNode()            {}

// ForStmt is a counted loop: `for InitName = InitExpr; Cond;
// UpdateName = UpdateExpr { Body }`.
type ForStmt struct {
	Token      lexer.Token
	InitName   string
	InitExpr   Expr
	Cond       Expr
	UpdateName string
	UpdateExpr Expr
	Body       *Block
}

func (f *ForStmt) TokenLiteral() string { return f.Token.Literal }
func (f *ForStmt) stmtNode()            {}

// BreakStmt unwinds to the nearest enclosing loop.
type BreakStmt struct {
	Token lexer.Token
}

func (b *BreakStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStmt) stmtNode()            {}

// ContinueStmt unwinds to the nearest enclosing loop's next iteration.
type ContinueStmt struct {
	Token lexer.Token
}

func (c *ContinueStmt) TokenLiteral() string { return c.Token.Literal }
func (c *ContinueStmt) stmtNode()            {}

// ReturnStmt exits the enclosing function call. Value is nil when the
// statement was a bare `return;`.
type ReturnStmt struct {
	Token lexer.Token
	Value Expr
}

func (r *ReturnStmt) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStmt) stmtNode()            {}

// PrintStmt appends the printable form of Value to the output buffer.
type PrintStmt struct {
	Token lexer.Token
	Value Expr
}

func (p *PrintStmt) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStmt) stmtNode()            {}

// ExprStmt evaluates Value and discards the result.
type ExprStmt struct {
	Token lexer.Token
	Value Expr
}

func (e *ExprStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExprStmt) stmtNode()            {}

// IntLiteral is an integer literal expression.
type IntLiteral struct {
	Token lexer.Token
	Value int64
}

func (n *IntLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *IntLiteral) exprNode()            {}

// BoolLiteral is a `true`/`false` literal expression.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) exprNode()            {}

// NullLiteral is the `null` literal expression.
type NullLiteral struct {
	Token lexer.Token
}

func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) exprNode()            {}

// NameExpr is a reference to a bound name.
type NameExpr struct {
	Token lexer.Token
	Name  string
}

func (n *NameExpr) TokenLiteral() string { return n.Token.Literal }
func (n *NameExpr) exprNode()            {}

// FuncLiteral is a function value expression: `func(params) { body }`.
type FuncLiteral struct {
	Token  lexer.Token
	Params []string
	Body   *Block
}

func (f *FuncLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FuncLiteral) exprNode()            {}

// UnaryExpr is a prefix operator applied to Right. minilang has exactly
// one: unary minus.
type UnaryExpr struct {
	Token lexer.Token
	Op    lexer.TokenType
	Right Expr
}

func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) exprNode()            {}

// BinaryExpr is an arithmetic, comparison, or equality operator: one of
// `^ * / + - < <= > >= = #`.
type BinaryExpr struct {
	Token lexer.Token
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) exprNode()            {}

// LogicalExpr is a short-circuit `&` (and) or `|` (or) expression.
// Operands are not coerced to boolean: the selected operand's own
// value is returned unmodified.
type LogicalExpr struct {
	Token lexer.Token
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func (l *LogicalExpr) TokenLiteral() string { return l.Token.Literal }
func (l *LogicalExpr) exprNode()            {}

// TernaryExpr is the right-associative `cond ? then : else` expression.
type TernaryExpr struct {
	Token lexer.Token
	Cond  Expr
	Then  Expr
	Else  Expr
}

func (t *TernaryExpr) TokenLiteral() string { return t.Token.Literal }
func (t *TernaryExpr) exprNode()            {}

// CallExpr applies Callee to Args.
type CallExpr struct {
	Token  lexer.Token
	Callee Expr
	Args   []Expr
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) exprNode()            {}
