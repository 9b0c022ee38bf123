/*
File    : minilang/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/scope"
)

// evalStatement dispatches a single statement node and returns either
// a plain value (Null, by convention, for statements that have none),
// or a signal (break/continue/return/error) that the caller must
// propagate without running any further statements at its level.
func (ev *Evaluator) evalStatement(stmt parser.Stmt) objects.GoMixObject {
	switch s := stmt.(type) {
	case *parser.Block:
		return ev.evalBlock(s)
	case *parser.VarStmt:
		return ev.evalVar(s)
	case *parser.SetStmt:
		return ev.evalSet(s)
	case *parser.IfStmt:
		return ev.evalIf(s)
	case *parser.WhileStmt:
		return ev.evalWhile(s)
	case *parser.ForStmt:
		return ev.evalFor(s)
	case *parser.BreakStmt:
		return &objects.BreakSignal{}
	case *parser.ContinueStmt:
		return &objects.ContinueSignal{}
	case *parser.ReturnStmt:
		return ev.evalReturn(s)
	case *parser.PrintStmt:
		return ev.evalPrint(s)
	case *parser.ExprStmt:
		return ev.evalExprStmt(s)
	default:
		return objects.NewError("Internal Error at statement.")
	}
}

// evalBlock pushes a new child frame, evaluates statements in order,
// and pops the frame on every exit path including signal propagation.
func (ev *Evaluator) evalBlock(block *parser.Block) objects.GoMixObject {
	saved := ev.Scope
	ev.Scope = scope.New(saved)

	var result objects.GoMixObject = &objects.Null{}
	for _, stmt := range block.Statements {
		result = ev.evalStatement(stmt)
		if objects.IsSignal(result) {
			break
		}
	}

	ev.Scope = saved
	return result
}

// evalVar evaluates the initializer (null if absent) and defines the
// name in the current frame, failing if it is already present there.
func (ev *Evaluator) evalVar(s *parser.VarStmt) objects.GoMixObject {
	var value objects.GoMixObject = &objects.Null{}
	if s.Init != nil {
		value = ev.evalExpression(s.Init)
		if objects.IsSignal(value) {
			return value
		}
	}
	if !ev.Scope.Define(s.Name, value) {
		return objects.NewError("`%s` already defined.", s.Name)
	}
	return &objects.Null{}
}

// evalSet evaluates the expression and assigns to the nearest
// enclosing binding, failing if the name is unbound.
func (ev *Evaluator) evalSet(s *parser.SetStmt) objects.GoMixObject {
	value := ev.evalExpression(s.Value)
	if objects.IsSignal(value) {
		return value
	}
	if !ev.Scope.Assign(s.Name, value) {
		return objects.NewError("`%s` not defined.", s.Name)
	}
	return &objects.Null{}
}

// evalIf evaluates the condition and runs the consequent or the
// alternate per minilang's truthiness rule.
func (ev *Evaluator) evalIf(s *parser.IfStmt) objects.GoMixObject {
	cond := ev.evalExpression(s.Cond)
	if objects.IsSignal(cond) {
		return cond
	}
	if objects.Truthy(cond) {
		return ev.evalBlock(s.Then)
	}
	if s.Else == nil {
		return &objects.Null{}
	}
	return ev.evalStatement(s.Else)
}

// evalReturn evaluates the value expression (null if absent) and
// raises the return signal carrying it.
func (ev *Evaluator) evalReturn(s *parser.ReturnStmt) objects.GoMixObject {
	var value objects.GoMixObject = &objects.Null{}
	if s.Value != nil {
		value = ev.evalExpression(s.Value)
		if objects.IsSignal(value) {
			return value
		}
	}
	return &objects.ReturnSignal{Value: value}
}

// evalPrint evaluates the expression and appends its printable form
// to the output buffer.
func (ev *Evaluator) evalPrint(s *parser.PrintStmt) objects.GoMixObject {
	value := ev.evalExpression(s.Value)
	if objects.IsSignal(value) {
		return value
	}
	ev.Output = append(ev.Output, toPrint(value))
	return &objects.Null{}
}

// evalExprStmt evaluates the expression and discards the result.
func (ev *Evaluator) evalExprStmt(s *parser.ExprStmt) objects.GoMixObject {
	value := ev.evalExpression(s.Value)
	if objects.IsSignal(value) {
		return value
	}
	return &objects.Null{}
}
