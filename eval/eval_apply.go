/*
File    : minilang/eval/eval_apply.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minilang/function"
	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/scope"
	"github.com/akashmaji946/minilang/std"
)

// apply invokes callee with args, for both built-ins and user
// functions. Break and continue signals from a user function's body
// are returned unchanged rather than caught here: they are only ever
// well-formed if an enclosing loop in the same call consumes them, and
// it is that loop, not this call boundary, that must catch them.
func (ev *Evaluator) apply(callee objects.GoMixObject, args []objects.GoMixObject) objects.GoMixObject {
	switch fn := callee.(type) {
	case *std.Builtin:
		if fn.Arity != len(args) {
			return objects.NewError("Parameter's count doesn't match.")
		}
		return fn.Callback(ev, args)

	case *function.Function:
		if len(fn.Params) != len(args) {
			return objects.NewError("Parameter's count doesn't match.")
		}

		saved := ev.Scope
		ev.Scope = scope.New(fn.Env)
		for i, param := range fn.Params {
			ev.Scope.Define(param, args[i])
		}

		result := ev.evalBlock(fn.Body)
		ev.Scope = saved

		if ret, ok := result.(*objects.ReturnSignal); ok {
			return ret.Value
		}
		if objects.IsSignal(result) {
			return result
		}
		return &objects.Null{}

	default:
		return objects.NewError("Internal Error at call.")
	}
}
