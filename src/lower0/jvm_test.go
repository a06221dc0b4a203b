package lower0

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"latc/src/ast0"
	"latc/src/session"
)

// `a = 1 + 2; print a;` exercises the full JVM pipeline: slot allocation,
// the stack-height oracle and the print sequence's forced height-2 floor.
func TestToJVMAssignThenPrint(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.AssignStmt{Name: "a", Expr: &ast0.AddExpr{Op: "+", L: &ast0.IntLit{Val: 1}, R: &ast0.IntLit{Val: 2}}},
		&ast0.PrintStmt{Expr: &ast0.Ident{Name: "a"}},
	}

	out, err := ToJVM(prog, session.Options{ClassName: "Prog"})
	assert.NoError(t, err)

	assert.Contains(t, out, ".class public Prog")
	assert.Contains(t, out, ".limit locals 2")
	assert.Contains(t, out, ".limit stack 2")
	assert.Contains(t, out, "istore_1")
	assert.Contains(t, out, "iload_1")
	assert.Contains(t, out, "invokevirtual java/io/PrintStream/println(I)V")
}

func TestToJVMPrintOfLiteralForcesStackLimitTwo(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.PrintStmt{Expr: &ast0.IntLit{Val: 7}},
	}
	out, err := ToJVM(prog, session.Options{ClassName: "Prog"})
	assert.NoError(t, err)
	assert.Contains(t, out, ".limit stack 2")
	assert.Contains(t, out, "bipush 7")
}

func TestToJVMUndefinedVariableErrors(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.PrintStmt{Expr: &ast0.Ident{Name: "never_assigned"}},
	}
	_, err := ToJVM(prog, session.Options{ClassName: "Prog"})
	assert.Error(t, err)
}

func TestToJVMVerboseDumpsAssembledText(t *testing.T) {
	prog := []ast0.Stmt{
		&ast0.PrintStmt{Expr: &ast0.IntLit{Val: 7}},
	}
	var buf bytes.Buffer
	out, err := ToJVM(prog, session.Options{ClassName: "Prog", Verbose: true, Debug: &buf})
	assert.NoError(t, err)
	assert.Equal(t, out+"\n", buf.String())
}
