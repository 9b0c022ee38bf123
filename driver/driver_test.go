/*
File    : minilang/driver/driver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsPrintedOutput(t *testing.T) {
	out, err := Run(`print 1 + 2;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, out)
}

func TestRun_ReturnsParseError(t *testing.T) {
	_, err := Run(`var 1 = 2;`)
	require.Error(t, err)
	assert.Equal(t, "Expected a name, found `1`.", err.Error())
}

func TestRun_ReturnsEvalError(t *testing.T) {
	_, err := Run(`print 1 / 0;`)
	require.Error(t, err)
	assert.Equal(t, "Division by zero.", err.Error())
}

func TestSession_AccumulatesBindingsAcrossCalls(t *testing.T) {
	sess := NewSession()

	out, err := sess.Eval(`var x = 1;`)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = sess.Eval(`print x;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, out)
}

func TestSession_EvalReturnsOnlyThisCallsOutput(t *testing.T) {
	sess := NewSession()
	_, err := sess.Eval(`print 1;`)
	require.NoError(t, err)

	out, err := sess.Eval(`print 2;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, out)
}
