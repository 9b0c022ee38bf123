/*
File    : minilang/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minilang/function"
	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/std"
)

// valuesEqual extends objects.Equal with the two kinds objects cannot
// see without an import cycle: user functions, compared per
// function.Function.Equal (same parameters, same body node, same
// captured scope), and
// built-ins, compared by identity.
func (ev *Evaluator) valuesEqual(a, b objects.GoMixObject) bool {
	if fa, ok := a.(*function.Function); ok {
		fb, ok := b.(*function.Function)
		return ok && fa.Equal(fb)
	}
	if ba, ok := a.(*std.Builtin); ok {
		bb, ok := b.(*std.Builtin)
		return ok && ba == bb
	}
	return objects.Equal(a, b)
}
