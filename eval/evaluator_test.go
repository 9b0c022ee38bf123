/*
File    : minilang/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/minilang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and evaluates src, returning the printed output or the
// fatal diagnostic string.
func run(t *testing.T, src string) ([]string, error) {
	t.Helper()
	prog, err := parser.ParseProgram(src)
	require.NoError(t, err)
	ev := New()
	err = ev.Eval(prog)
	return ev.Output, err
}

func TestEval_PowerIsRightAssociative(t *testing.T) {
	out, err := run(t, `print 2 ^ 2 ^ 3;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"256"}, out)
}

func TestEval_WhileLoop(t *testing.T) {
	out, err := run(t, `var i = 0; while i # 3 { print i; set i = i + 1; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, out)
}

func TestEval_DefAndCall(t *testing.T) {
	out, err := run(t, `def sum(a,b){ return a+b; } print sum(2,3); print sum(4,5);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "9"}, out)
}

func TestEval_ClosureCapturesDefinitionEnvironment(t *testing.T) {
	out, err := run(t, `var make_adder = func(a){ return func(b){ return a+b; }; }; print make_adder(2)(3);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, out)
}

func TestEval_ForLoopWithContinue(t *testing.T) {
	out, err := run(t, `for i = 0; i # 5; i = i + 1 { if i = 2 { continue; } print i; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "3", "4"}, out)
}

func TestEval_WhileThenRunsOnlyOnNaturalExit(t *testing.T) {
	out, err := run(t, `while false {} then { print 2; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, out)

	out, err = run(t, `while true { break; } then { print 2; }`)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEval_TernaryDoesNotEvaluateUnchosenBranch(t *testing.T) {
	out, err := run(t, `print 1 = 1 ? 1 + 2 : 1 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, out)
}

func TestEval_BuiltinArityMismatch(t *testing.T) {
	_, err := run(t, `less(1);`)
	require.Error(t, err)
	assert.Equal(t, "Parameter's count doesn't match.", err.Error())
}

func TestEval_RedeclarationFails(t *testing.T) {
	_, err := run(t, `var a = 1; var a = 1;`)
	require.Error(t, err)
	assert.Equal(t, "`a` already defined.", err.Error())
}

func TestEval_BareReturnAtTopLevel(t *testing.T) {
	_, err := run(t, `return;`)
	require.Error(t, err)
	assert.Equal(t, "Return from top level.", err.Error())
}

func TestEval_BareBreakAtTopLevel(t *testing.T) {
	_, err := run(t, `break;`)
	require.Error(t, err)
	assert.Equal(t, "Break at top level.", err.Error())
}

func TestEval_BareContinueAtTopLevel(t *testing.T) {
	_, err := run(t, `continue;`)
	require.Error(t, err)
	assert.Equal(t, "Continue at top level.", err.Error())
}

func TestEval_FloorDivisionTruncatesTowardNegativeInfinity(t *testing.T) {
	out, err := run(t, `print -7 / 2; print 7 / -2; print 7 / 2;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"-4", "-4", "3"}, out)
}

func TestEval_DivisionByZero(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Equal(t, "Division by zero.", err.Error())
}

func TestEval_UnboundNameFails(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	assert.Equal(t, "`missing` not defined.", err.Error())
}

func TestEval_AssignToUnboundNameFails(t *testing.T) {
	_, err := run(t, `set missing = 1;`)
	require.Error(t, err)
	assert.Equal(t, "`missing` not defined.", err.Error())
}

func TestEval_ShortCircuitAndSkipsRightOperandOnFalse(t *testing.T) {
	out, err := run(t, `print false & (1/0 = 0);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false"}, out)
}

func TestEval_ShortCircuitOrSkipsRightOperandOnTrue(t *testing.T) {
	out, err := run(t, `print true | (1/0 = 0);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, out)
}

func TestEval_LexicalScopingVarShadowsThenRestores(t *testing.T) {
	out, err := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, out)
}

func TestEval_LexicalScopingSetMutatesEnclosingBinding(t *testing.T) {
	out, err := run(t, `var a = 1; { set a = 2; print a; } print a;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "2"}, out)
}

func TestEval_IntegerZeroIsFalsy(t *testing.T) {
	out, err := run(t, `if 0 { print 1; } else { print 2; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, out)
}

func TestEval_NonZeroIntegerIsTruthy(t *testing.T) {
	out, err := run(t, `if 5 { print 1; } else { print 2; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, out)
}

func TestEval_FunctionValuesCompareByIdentity(t *testing.T) {
	out, err := run(t, `
		def f(){ return 1; }
		def g(){ return 1; }
		print f = f;
		print f = g;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true", "false"}, out)
}

func TestEval_BreakPropagatesThroughFunctionCallToEnclosingLoop(t *testing.T) {
	out, err := run(t, `
		def stop(){ break; }
		for i = 0; i # 5; i = i + 1 {
			if i = 2 { stop(); }
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, out)
}

func TestEval_LessBuiltin(t *testing.T) {
	out, err := run(t, `print less(1, 2); print less(2, 1);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true", "false"}, out)
}

func TestEval_PrintEnvEmitsDump(t *testing.T) {
	out, err := run(t, `var x = 1; print_env();`)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "x=1")
}
