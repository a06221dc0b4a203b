package jvmgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"latc/src/ast0"
)

func ident(name string) *ast0.Ident { return &ast0.Ident{Name: name} }
func lit(n int32) *ast0.IntLit      { return &ast0.IntLit{Val: n} }

// Both leaves of a binary expression require exactly one stack slot, so
// the "equal heights" rule must bump the combined height to 2.
func TestEmitEqualHeightsBumpsByOne(t *testing.T) {
	locals := NewLocalEnv()
	locals.Slot("a")
	locals.Slot("b")

	r, err := Emit(&ast0.AddExpr{Op: "+", L: ident("a"), R: ident("b")}, locals)
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, []string{"iload_1", "iload_2", "iadd"}, r.Code)
}

// When the right operand needs strictly more stack than the left, the
// oracle emits the right operand first and inserts "swap" for a
// non-commutative operator so the operands land on the stack in source
// order for the actual subtraction.
func TestEmitSwapInsertedForNonCommutativeReorder(t *testing.T) {
	locals := NewLocalEnv()
	locals.Slot("a")

	// a - (x * y): RHS needs height 2, LHS needs height 1, so the oracle
	// must evaluate RHS first and swap before isub.
	rhs := &ast0.MulExpr{Op: "*", L: ident("x"), R: ident("y")}
	locals.Slot("x")
	locals.Slot("y")

	r, err := Emit(&ast0.AddExpr{Op: "-", L: ident("a"), R: rhs}, locals)
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, []string{"iload_2", "iload_3", "imul", "iload_1", "swap", "isub"}, r.Code)
}

// The symmetric case for a commutative operator must NOT emit "swap": the
// reordering is value-preserving on its own.
func TestEmitNoSwapForCommutativeReorder(t *testing.T) {
	locals := NewLocalEnv()
	locals.Slot("a")
	rhs := &ast0.MulExpr{Op: "*", L: ident("x"), R: ident("y")}
	locals.Slot("x")
	locals.Slot("y")

	r, err := Emit(&ast0.AddExpr{Op: "+", L: ident("a"), R: rhs}, locals)
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, []string{"iload_2", "iload_3", "imul", "iload_1", "iadd"}, r.Code)
}

func TestEmitIntLitHeightOne(t *testing.T) {
	r, err := Emit(lit(42), NewLocalEnv())
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Height)
	assert.Equal(t, []string{"bipush 42"}, r.Code)
}

func TestEmitParenTransparent(t *testing.T) {
	locals := NewLocalEnv()
	locals.Slot("a")
	r, err := Emit(&ast0.ParenExpr{Inner: ident("a")}, locals)
	assert.NoError(t, err)
	assert.Equal(t, Result{Code: []string{"iload_1"}, Height: 1}, r)
}

// Reading an identifier that was never assigned a slot must surface as an
// error instead of fabricating a bogus load.
func TestEmitUndefinedVariableErrors(t *testing.T) {
	locals := NewLocalEnv()
	_, err := Emit(ident("never_assigned"), locals)
	assert.Error(t, err)
}
