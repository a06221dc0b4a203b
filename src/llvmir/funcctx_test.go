package llvmir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Registers and labels are monotonic per function and independent of each
// other's sequence, and a fresh FuncCtx restarts both.
func TestFuncCtxCountersAreFreshPerFunction(t *testing.T) {
	m := NewModule()
	f1 := m.NewFuncCtx()
	assert.Equal(t, "%.t1", f1.NewReg())
	assert.Equal(t, "%.t2", f1.NewReg())
	assert.Equal(t, "L1", f1.NewLabel())

	f2 := m.NewFuncCtx()
	assert.Equal(t, "%.t1", f2.NewReg())
	assert.Equal(t, "L1", f2.NewLabel())
}

func TestEmitLabelUpdatesCurrent(t *testing.T) {
	m := NewModule()
	f := m.NewFuncCtx()
	assert.Equal(t, "entry", f.Current())
	f.EmitLabel("L1")
	assert.Equal(t, "L1", f.Current())
}

func TestInternStringSharesPoolEntryAcrossFunctions(t *testing.T) {
	m := NewModule()
	f1 := m.NewFuncCtx()
	f2 := m.NewFuncCtx()

	r1 := f1.InternString("hi")
	r2 := f2.InternString("hi")
	// Each function gets its own destination register, but both come from
	// the same pooled @.strN global: "hi" is only interned once.
	assert.Equal(t, "%.t1", r1)
	assert.Equal(t, "%.t1", r2)
	assert.Len(t, m.stringOrder, 1)
}
