/*
File    : minilang/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/akashmaji946/minilang/objects"
	"github.com/akashmaji946/minilang/parser"
	"github.com/akashmaji946/minilang/scope"
	"github.com/stretchr/testify/assert"
)

func TestFunction_GetTypeAndToString(t *testing.T) {
	fn := &Function{Params: []string{"a"}, Body: &parser.Block{}, Env: scope.New(nil)}
	assert.Equal(t, objects.FunctionType, fn.GetType())
	assert.Equal(t, "<func>", fn.ToString())
}

func TestFunction_EqualComparesBodyAndEnvIdentity(t *testing.T) {
	env := scope.New(nil)
	body := &parser.Block{}
	a := &Function{Params: []string{"a"}, Body: body, Env: env}
	b := &Function{Params: []string{"a"}, Body: body, Env: env}
	c := &Function{Params: []string{"a"}, Body: &parser.Block{}, Env: env}

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
