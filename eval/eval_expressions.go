/*
File    : minilang/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minilang/function"
	"github.com/akashmaji946/minilang/lexer"
	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/parser"
)

// evalExpression dispatches a single expression node to a value.
func (ev *Evaluator) evalExpression(expr parser.Expr) objects.GoMixObject {
	switch e := expr.(type) {
	case *parser.IntLiteral:
		return &objects.Integer{Value: e.Value}
	case *parser.BoolLiteral:
		return &objects.Boolean{Value: e.Value}
	case *parser.NullLiteral:
		return &objects.Null{}
	case *parser.NameExpr:
		return ev.evalName(e)
	case *parser.FuncLiteral:
		return &function.Function{Params: e.Params, Body: e.Body, Env: ev.Scope}
	case *parser.UnaryExpr:
		return ev.evalUnary(e)
	case *parser.BinaryExpr:
		return ev.evalBinary(e)
	case *parser.LogicalExpr:
		return ev.evalLogical(e)
	case *parser.TernaryExpr:
		return ev.evalTernary(e)
	case *parser.CallExpr:
		return ev.evalCall(e)
	default:
		return objects.NewError("Internal Error at expression.")
	}
}

// evalName looks a name up in the environment chain, failing if it is
// unbound anywhere.
func (ev *Evaluator) evalName(e *parser.NameExpr) objects.GoMixObject {
	if value, ok := ev.Scope.Lookup(e.Name); ok {
		return value
	}
	return objects.NewError("`%s` not defined.", e.Name)
}

// evalUnary implements minilang's one prefix operator, unary minus.
func (ev *Evaluator) evalUnary(e *parser.UnaryExpr) objects.GoMixObject {
	right := ev.evalExpression(e.Right)
	if objects.IsSignal(right) {
		return right
	}
	i, ok := right.(*objects.Integer)
	if !ok {
		return objects.NewError("Operand must be integer.")
	}
	return &objects.Integer{Value: -i.Value}
}

// evalBinary implements `^ * / + - < <= > >= = #`. Equality and
// inequality work on any compatible pair of values; every other
// operator requires both operands to be integers.
func (ev *Evaluator) evalBinary(e *parser.BinaryExpr) objects.GoMixObject {
	left := ev.evalExpression(e.Left)
	if objects.IsSignal(left) {
		return left
	}
	right := ev.evalExpression(e.Right)
	if objects.IsSignal(right) {
		return right
	}

	switch e.Op {
	case lexer.ASSIGN:
		return &objects.Boolean{Value: ev.valuesEqual(left, right)}
	case lexer.HASH:
		return &objects.Boolean{Value: !ev.valuesEqual(left, right)}
	}

	li, lok := left.(*objects.Integer)
	ri, rok := right.(*objects.Integer)
	if !lok || !rok {
		return objects.NewError("Operands must be integers.")
	}

	switch e.Op {
	case lexer.PLUS:
		return &objects.Integer{Value: li.Value + ri.Value}
	case lexer.MINUS:
		return &objects.Integer{Value: li.Value - ri.Value}
	case lexer.STAR:
		return &objects.Integer{Value: li.Value * ri.Value}
	case lexer.SLASH:
		if ri.Value == 0 {
			return objects.NewError("Division by zero.")
		}
		return &objects.Integer{Value: floorDiv(li.Value, ri.Value)}
	case lexer.CARET:
		return evalPower(li.Value, ri.Value)
	case lexer.LT:
		return &objects.Boolean{Value: li.Value < ri.Value}
	case lexer.LE:
		return &objects.Boolean{Value: li.Value <= ri.Value}
	case lexer.GT:
		return &objects.Boolean{Value: li.Value > ri.Value}
	case lexer.GE:
		return &objects.Boolean{Value: li.Value >= ri.Value}
	default:
		return objects.NewError("Internal Error at binary operator.")
	}
}

// floorDiv truncates toward negative infinity, unlike Go's native
// truncate-toward-zero `/`.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// evalPower implements non-negative integer exponentiation. A
// negative exponent fails rather than silently returning zero.
func evalPower(base, exp int64) objects.GoMixObject {
	if exp < 0 {
		return objects.NewError("Operands must be integers.")
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return &objects.Integer{Value: result}
}

// evalLogical implements short-circuit `&`/`|`: the selected operand's
// own value is returned unmodified, never coerced to boolean.
func (ev *Evaluator) evalLogical(e *parser.LogicalExpr) objects.GoMixObject {
	left := ev.evalExpression(e.Left)
	if objects.IsSignal(left) {
		return left
	}
	switch e.Op {
	case lexer.AMP:
		if !objects.Truthy(left) {
			return left
		}
		return ev.evalExpression(e.Right)
	case lexer.PIPE:
		if objects.Truthy(left) {
			return left
		}
		return ev.evalExpression(e.Right)
	default:
		return objects.NewError("Internal Error at logical operator.")
	}
}

// evalTernary evaluates only the selected branch.
func (ev *Evaluator) evalTernary(e *parser.TernaryExpr) objects.GoMixObject {
	cond := ev.evalExpression(e.Cond)
	if objects.IsSignal(cond) {
		return cond
	}
	if objects.Truthy(cond) {
		return ev.evalExpression(e.Then)
	}
	return ev.evalExpression(e.Else)
}

// evalCall evaluates the callee, then each argument left-to-right,
// then applies.
func (ev *Evaluator) evalCall(e *parser.CallExpr) objects.GoMixObject {
	callee := ev.evalExpression(e.Callee)
	if objects.IsSignal(callee) {
		return callee
	}

	args := make([]objects.GoMixObject, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg := ev.evalExpression(argExpr)
		if objects.IsSignal(arg) {
			return arg
		}
		args = append(args, arg)
	}

	return ev.apply(callee, args)
}
