/*
File    : minilang/driver/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package driver is minilang's callable entry point: it lexes, parses,
// and evaluates source text and hands back either the accumulated
// printed output or a single-line diagnostic. File mode, REPL mode,
// and server mode are thin shells built on top of it.
package driver

import (
	"github.com/akashmaji946/minilang/eval"
	"github.com/akashmaji946/minilang/parser"
)

// Run lexes, parses, and evaluates source against a fresh Evaluator.
// It returns the printed output on success, or the first syntactic or
// semantic diagnostic on failure.
func Run(source string) ([]string, error) {
	return NewSession().Eval(source)
}

// Session wraps one Evaluator across multiple calls to Eval, so a
// REPL or a server connection can accumulate variable and function
// bindings across inputs.
type Session struct {
	ev *eval.Evaluator
}

// NewSession creates a Session with a fresh global scope.
func NewSession() *Session {
	return &Session{ev: eval.New()}
}

// Eval parses source as a complete program and evaluates it against
// the session's persistent environment, returning any output printed
// by this call alone.
func (s *Session) Eval(source string) ([]string, error) {
	prog, err := parser.ParseProgram(source)
	if err != nil {
		return nil, err
	}

	before := len(s.ev.Output)
	if err := s.ev.Eval(prog); err != nil {
		return nil, err
	}
	return s.ev.Output[before:], nil
}

// DumpEnv exposes the session's current environment chain, used by
// the REPL's `/scope` meta-command.
func (s *Session) DumpEnv() string {
	return s.ev.DumpEnv()
}
