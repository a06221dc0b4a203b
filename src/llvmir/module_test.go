package llvmir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Identical string contents must share one pool entry and one name
// (content-addressing); distinct contents must not collide.
func TestModuleInternDedupesByContent(t *testing.T) {
	m := NewModule()
	a1 := m.intern("hello")
	a2 := m.intern("hello")
	b := m.intern("world")

	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)
	assert.Len(t, m.stringOrder, 2)
}

func TestAssembleOnlyDeclaresUsedBuiltins(t *testing.T) {
	m := NewModule()
	m.MarkUsed("printInt")
	m.AddFuncBody("define i32 @main() {\nentry:\n    ret i32 0\n}")

	out := m.Assemble()
	assert.Contains(t, out, "declare void @printInt(i32)")
	assert.NotContains(t, out, "@printString")
	assert.NotContains(t, out, "@strcmp")
}

func TestAssembleDeclareOrderIsDeterministic(t *testing.T) {
	m := NewModule()
	m.MarkUsed("strconcat")
	m.MarkUsed("printInt")
	m.MarkUsed("error")

	out := m.Assemble()
	iPrint := strings.Index(out, "@printInt")
	iError := strings.Index(out, "@error")
	iConcat := strings.Index(out, "@strconcat")
	assert.True(t, iPrint < iError)
	assert.True(t, iError < iConcat)
}

func TestGlobalStringDefEscapesNonPrintable(t *testing.T) {
	def := globalStringDef("@.str0", "a\nb\"c")
	assert.Equal(t, `@.str0 = internal constant [6 x i8] c"a\0Ab\22c\00"`, def)
}
