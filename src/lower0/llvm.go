// Package lower0 implements the L0 (Instant-style) lowerers: expression-
// and-print translation to both the JVM and LLVM backends. It is grounded
// on the original Python Instant compilers
// (_examples/original_source/instant/src/JVMCompiler.py and
// LLVMCompiler.py), rewritten as idiomatic Go rather than translated line
// for line, and reuses the jvmgen stack-height oracle for its JVM half.
package lower0

import (
	"fmt"
	"strconv"
	"strings"

	"latc/src/ast0"
	"latc/src/session"
)

// printIntDefLLVM is the self-contained printInt helper L0 needs: unlike
// the L1 runtime ABI (an external declare resolved by llvm-link against
// runtime.bc), L0 has no companion runtime library, so the original
// Instant LLVM backend defines printInt itself against libc's printf. This
// is carried over unchanged (see DESIGN.md Open Question: whether llvm-as
// accepts a module with no other header).
const printIntDefLLVM = `@.l0.dnl = internal constant [4 x i8] c"%d\0A\00"

declare i32 @printf(i8*, ...)

define void @printInt(i32 %x) {
    %t0 = getelementptr [4 x i8], [4 x i8]* @.l0.dnl, i32 0, i32 0
    call i32 (i8*, ...) @printf(i8* %t0, i32 %x)
    ret void
}

`

// ToLLVM lowers an L0 program to a textual LLVM IR module: one anonymous
// "main" with an alloca+store/load per variable, a call to printInt per
// print statement, and a final "ret i32 0". Reading a variable that was
// never assigned is reported as an error rather than silently lowered to
// a load from register %0, matching the original LLVMCompiler.py's
// visit_exp_var. When opts.Verbose is set, the assembled module text is
// also written to opts.Debug (if non-nil) before returning.
func ToLLVM(prog []ast0.Stmt, opts session.Options) (string, error) {
	reg := 0
	newReg := func() int {
		reg++
		return reg
	}

	vars := make(map[string]int) // name -> register holding its alloca
	var body []string
	printUsed := false

	var lower func(e ast0.Expr) (string, error)
	lower = func(e ast0.Expr) (string, error) {
		switch n := e.(type) {
		case *ast0.IntLit:
			return strconv.Itoa(int(n.Val)), nil
		case *ast0.Ident:
			r, ok := vars[n.Name]
			if !ok {
				return "", fmt.Errorf("undefined variable %q", n.Name)
			}
			out := newReg()
			body = append(body, "    %"+strconv.Itoa(out)+" = load i32, i32* %"+strconv.Itoa(r))
			return "%" + strconv.Itoa(out), nil
		case *ast0.ParenExpr:
			return lower(n.Inner)
		case *ast0.MulExpr:
			return lowerBinary(mulMnemonic(n.Op), n.L, n.R, lower, newReg, &body)
		case *ast0.AddExpr:
			return lowerBinary(addMnemonic(n.Op), n.L, n.R, lower, newReg, &body)
		default:
			return "", fmt.Errorf("lower0: unhandled expression type %T", e)
		}
	}

	for _, s := range prog {
		switch st := s.(type) {
		case *ast0.AssignStmt:
			v, err := lower(st.Expr)
			if err != nil {
				return "", err
			}
			r, ok := vars[st.Name]
			if !ok {
				r = newReg()
				body = append(body, "    %"+strconv.Itoa(r)+" = alloca i32")
				vars[st.Name] = r
			}
			body = append(body, "    store i32 "+v+", i32* %"+strconv.Itoa(r))
		case *ast0.PrintStmt:
			v, err := lower(st.Expr)
			if err != nil {
				return "", err
			}
			body = append(body, "    call void @printInt(i32 "+v+")")
			printUsed = true
		}
	}
	body = append(body, "    ret i32 0")

	var sb strings.Builder
	if printUsed {
		sb.WriteString(printIntDefLLVM)
	}
	sb.WriteString("define i32 @main() {\n")
	sb.WriteString(strings.Join(body, "\n"))
	sb.WriteString("\n}\n")
	out := sb.String()

	if opts.Verbose && opts.Debug != nil {
		fmt.Fprintln(opts.Debug, out)
	}
	return out, nil
}

func lowerBinary(instr string, lExpr, rExpr ast0.Expr, lower func(ast0.Expr) (string, error), newReg func() int, body *[]string) (string, error) {
	l, err := lower(lExpr)
	if err != nil {
		return "", err
	}
	r, err := lower(rExpr)
	if err != nil {
		return "", err
	}
	out := newReg()
	*body = append(*body, "    %"+strconv.Itoa(out)+" = "+instr+" i32 "+l+", "+r)
	return "%" + strconv.Itoa(out), nil
}

func mulMnemonic(op string) string {
	if op == "/" {
		return "sdiv"
	}
	return "mul"
}

func addMnemonic(op string) string {
	if op == "-" {
		return "sub"
	}
	return "add"
}
