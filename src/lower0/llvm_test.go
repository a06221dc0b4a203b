package lower0

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"latc/src/ast0"
	"latc/src/session"
)

func TestToLLVMOmitsPrintIntWhenUnused(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.AssignStmt{Name: "a", Expr: &ast0.IntLit{Val: 5}},
	}
	out, err := ToLLVM(prog, session.Options{})
	assert.NoError(t, err)
	assert.NotContains(t, out, "@printf")
	assert.Contains(t, out, "define i32 @main()")
	assert.Contains(t, out, "alloca i32")
	assert.Contains(t, out, "ret i32 0")
}

func TestToLLVMDefinesPrintIntWhenUsed(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.PrintStmt{Expr: &ast0.IntLit{Val: 5}},
	}
	out, err := ToLLVM(prog, session.Options{})
	assert.NoError(t, err)
	assert.Contains(t, out, "define void @printInt(i32 %x)")
	assert.Contains(t, out, "call void @printInt(i32 5)")
	assert.Contains(t, out, "declare i32 @printf(i8*, ...)")
}

func TestToLLVMReassignmentReusesAlloca(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.AssignStmt{Name: "a", Expr: &ast0.IntLit{Val: 1}},
		&ast0.AssignStmt{Name: "a", Expr: &ast0.IntLit{Val: 2}},
	}
	out, err := ToLLVM(prog, session.Options{})
	assert.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "alloca i32"))
}

func TestToLLVMUndefinedVariableErrors(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.PrintStmt{Expr: &ast0.Ident{Name: "never_assigned"}},
	}
	_, err := ToLLVM(prog, session.Options{})
	assert.Error(t, err)
}
