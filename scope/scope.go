/*
File    : minilang/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements minilang's lexical environment: an ordered
// chain of frames, child pointing at parent. A closure shares the
// *Scope pointer active at the point its function literal was
// evaluated, never a copy of it, so bindings added to that scope after
// capture remain visible to the closure.
package scope

import "github.com/akashmaji946/minilang/objects"

// Scope is one frame in the environment chain: a name-to-value mapping
// with an optional parent.
type Scope struct {
	vars   map[string]objects.GoMixObject
	Parent *Scope
}

// New creates a scope parented to parent (nil for the global scope).
func New(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]objects.GoMixObject), Parent: parent}
}

// Lookup walks child→parent and returns the nearest binding for name.
func (s *Scope) Lookup(name string) (objects.GoMixObject, bool) {
	if obj, ok := s.vars[name]; ok {
		return obj, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// Define introduces name in this frame only. It fails if name is
// already bound in this frame: a `var` may not redeclare a name in the
// innermost scope.
func (s *Scope) Define(name string, obj objects.GoMixObject) bool {
	if _, exists := s.vars[name]; exists {
		return false
	}
	s.vars[name] = obj
	return true
}

// Assign walks child→parent and updates the nearest existing binding.
// It fails if name is unbound anywhere in the chain.
func (s *Scope) Assign(name string, obj objects.GoMixObject) bool {
	if _, exists := s.vars[name]; exists {
		s.vars[name] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, obj)
	}
	return false
}

// Names returns the bindings defined directly in this frame, for the
// print_env built-in's environment dump.
func (s *Scope) Names() map[string]objects.GoMixObject {
	return s.vars
}
