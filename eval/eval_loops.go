/*
File    : minilang/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/scope"
)

// evalWhile repeatedly evaluates the condition while it is truthy. A
// continue resumes the next iteration; a break terminates the loop
// without running the then-clause; a natural exit (condition becomes
// falsy) runs the then-clause once.
func (ev *Evaluator) evalWhile(s *parser.WhileStmt) objects.GoMixObject {
	for {
		cond := ev.evalExpression(s.Cond)
		if objects.IsSignal(cond) {
			return cond
		}
		if !objects.Truthy(cond) {
			return ev.evalBlock(s.Then)
		}

		result := ev.evalBlock(s.Body)
		if objects.IsSignal(result) {
			switch result.(type) {
			case *objects.BreakSignal:
				return &objects.Null{}
			case *objects.ContinueSignal:
				continue
			default:
				return result
			}
		}
	}
}

// evalFor evaluates the init expression into a loop-local frame, then
// repeatedly tests the condition, runs the body, and applies the
// update. A continue still applies the update before re-testing the
// condition; a break terminates without it.
func (ev *Evaluator) evalFor(s *parser.ForStmt) objects.GoMixObject {
	saved := ev.Scope
	ev.Scope = scope.New(saved)
	defer func() { ev.Scope = saved }()

	initVal := ev.evalExpression(s.InitExpr)
	if objects.IsSignal(initVal) {
		return initVal
	}
	ev.Scope.Define(s.InitName, initVal)

	for {
		cond := ev.evalExpression(s.Cond)
		if objects.IsSignal(cond) {
			return cond
		}
		if !objects.Truthy(cond) {
			return &objects.Null{}
		}

		result := ev.evalBlock(s.Body)
		if objects.IsSignal(result) {
			if _, isBreak := result.(*objects.BreakSignal); isBreak {
				return &objects.Null{}
			}
			if _, isContinue := result.(*objects.ContinueSignal); !isContinue {
				return result
			}
		}

		updateVal := ev.evalExpression(s.UpdateExpr)
		if objects.IsSignal(updateVal) {
			return updateVal
		}
		if !ev.Scope.Assign(s.UpdateName, updateVal) {
			return objects.NewError("`%s` not defined.", s.UpdateName)
		}
	}
}
