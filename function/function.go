/*
File    : minilang/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the user-function value type. It is split out
// of objects because a function value must reference the parser's AST
// (its parameter list and body) and the scope it closed over, and
// objects cannot import parser without objects, parser, and scope
// forming an import cycle.
package function

import (
	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/scope"
)

// Function is a first-class user function: its parameter names, its
// body, and the environment that was current when the function literal
// was evaluated (its closure).
type Function struct {
	Params []string
	Body   *parser.Block
	Env    *scope.Scope
}

func (f *Function) GetType() objects.GoMixType { return objects.FunctionType }
func (f *Function) ToString() string           { return "<func>" }

// Equal reports whether two function values share the same parameter
// list, the same body AST node, and the same captured environment.
// Body and environment are compared by pointer identity, so distinct
// parses are unequal even when textually identical.
func (f *Function) Equal(other *Function) bool {
	if f.Body != other.Body || f.Env != other.Env || len(f.Params) != len(other.Params) {
		return false
	}
	for i := range f.Params {
		if f.Params[i] != other.Params[i] {
			return false
		}
	}
	return true
}
