/*
File    : minilang/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks a parsed minilang program against a chain of
// scopes. Break, continue, return, and fatal errors all ride the same
// Eval return channel as ordinary values, distinguished only by
// GetType(), rather than threading a separate Go error return through
// every call. An Evaluator is not safe for concurrent use; independent
// evaluators share nothing.
package eval

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/scope"
	"github.com/akashmaji946/minilang/std"
)

// Evaluator holds the current environment pointer and the append-only
// output buffer of printed values.
type Evaluator struct {
	Scope  *scope.Scope
	Output []string
}

// New creates an Evaluator with a fresh global frame seeded with
// std.Registry's built-ins.
func New() *Evaluator {
	ev := &Evaluator{Scope: scope.New(nil)}
	for _, b := range std.Registry {
		ev.Scope.Define(b.Name, b)
	}
	return ev
}

// Eval runs every top-level statement in prog in order. A return,
// break, or continue signal escaping to this level, or an evaluation
// error, is reported as the run's fatal error.
func (ev *Evaluator) Eval(prog *parser.Program) error {
	for _, stmt := range prog.Statements {
		result := ev.evalStatement(stmt)
		switch result.(type) {
		case *objects.ReturnSignal:
			return errors.New("Return from top level.")
		case *objects.BreakSignal:
			return errors.New("Break at top level.")
		case *objects.ContinueSignal:
			return errors.New("Continue at top level.")
		}
		if objects.IsError(result) {
			return errors.New(result.(*objects.Error).Message)
		}
	}
	return nil
}

// Emit implements std.Runtime for built-ins that append directly to
// the output buffer (print_env).
func (ev *Evaluator) Emit(line string) {
	ev.Output = append(ev.Output, line)
}

// DumpEnv implements std.Runtime by formatting every frame from
// innermost to outermost as `{name=value, ...}`, for print_env.
func (ev *Evaluator) DumpEnv() string {
	var frames []string
	for s := ev.Scope; s != nil; s = s.Parent {
		names := s.Names()
		keys := make([]string, 0, len(names))
		for k := range names {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, names[k].ToString()))
		}
		frames = append(frames, "{"+strings.Join(parts, ", ")+"}")
	}
	return strings.Join(frames, " -> ")
}

// toPrint maps a value to its output-buffer entry. Every GoMixObject's
// ToString already renders the printable form, so this is a thin,
// self-documenting alias.
func toPrint(obj objects.GoMixObject) string {
	return obj.ToString()
}
