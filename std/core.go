/*
File    : minilang/std/core.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import "github.com/akashmaji946/minilang/objects"

func init() {
	register(&Builtin{Name: "less", Arity: 2, Callback: lessCallback})
	register(&Builtin{Name: "print_env", Arity: 0, Callback: printEnvCallback})
}

// lessCallback implements `less`: a two-argument built-in returning
// `a < b` under the integer-operand contract.
func lessCallback(_ Runtime, args []objects.GoMixObject) objects.GoMixObject {
	a, aok := args[0].(*objects.Integer)
	b, bok := args[1].(*objects.Integer)
	if !aok || !bok {
		return objects.NewError("Operands must be integers.")
	}
	return &objects.Boolean{Value: a.Value < b.Value}
}

// printEnvCallback implements `print_env`: it appends the current
// environment chain's contents to the output buffer for debugging and
// yields null.
func printEnvCallback(rt Runtime, _ []objects.GoMixObject) objects.GoMixObject {
	rt.Emit(rt.DumpEnv())
	return &objects.Null{}
}
