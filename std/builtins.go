/*
File    : minilang/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std holds minilang's built-in registry. A Builtin is itself
// a GoMixObject so it can live in a Scope frame exactly like any other
// value; Runtime lets a built-in call back into the evaluator
// (print_env needs the current environment chain) without std
// importing eval, which imports std.
package std

import "github.com/akashmaji946/minilang/objects"

// Runtime is the callback surface a Builtin gets at call time. Eval
// implements it directly on its Evaluator.
type Runtime interface {
	// Emit appends line to the evaluator's output buffer.
	Emit(line string)
	// DumpEnv formats the current environment chain for print_env.
	DumpEnv() string
}

// Callback is a built-in's implementation. args has already been
// checked against Arity by the evaluator before Callback runs.
type Callback func(rt Runtime, args []objects.GoMixObject) objects.GoMixObject

// Builtin is an opaque callable with a declared arity, implemented in
// Go.
type Builtin struct {
	Name     string
	Arity    int
	Callback Callback
}

func (b *Builtin) GetType() objects.GoMixType { return objects.BuiltinType }
func (b *Builtin) ToString() string           { return "<builtin>" }

// Registry lists every built-in the global frame is seeded with. New
// built-ins register themselves here via init() in this package's
// other files.
var Registry []*Builtin

func register(b *Builtin) {
	Registry = append(Registry, b)
}
