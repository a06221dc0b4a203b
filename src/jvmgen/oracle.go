package jvmgen

import (
	"fmt"

	"latc/src/ast0"
)

// Result pairs the generated code for an expression with the minimum
// operand-stack depth required to evaluate it from an empty stack.
type Result struct {
	Code   []string
	Height int
}

// commutative reports whether swapping the emission order of a binary
// operator's operands leaves its result unchanged, i.e. whether a
// stack-order swap needs no corrective "swap" instruction.
func commutative(op string) bool {
	return op == "+" || op == "*"
}

func mnemonic(op string) string {
	switch op {
	case "+":
		return "iadd"
	case "-":
		return "isub"
	case "*":
		return "imul"
	case "/":
		return "idiv"
	default:
		return "?" + op
	}
}

// Emit computes (code, height) for expression e, implementing Ershov-number
// scheduling: for a binary node, the operand with the greater required
// stack height is emitted first so the shallower operand's extra slot never
// needs to be reserved ahead of time; a "swap" is inserted only when the
// chosen order reverses a non-commutative operator's arguments. Reading an
// identifier that was never assigned is an error rather than a silently
// allocated slot, matching the original JVMCompiler.py's visit_exp_var.
func Emit(e ast0.Expr, locals *LocalEnv) (Result, error) {
	switch n := e.(type) {
	case *ast0.IntLit:
		return Result{Code: []string{Const(n.Val)}, Height: 1}, nil
	case *ast0.Ident:
		slot, ok := locals.Lookup(n.Name)
		if !ok {
			return Result{}, fmt.Errorf("undefined variable %q", n.Name)
		}
		return Result{Code: []string{Load(slot)}, Height: 1}, nil
	case *ast0.ParenExpr:
		return Emit(n.Inner, locals)
	case *ast0.MulExpr:
		return emitBinary(n.Op, n.L, n.R, locals)
	case *ast0.AddExpr:
		return emitBinary(n.Op, n.L, n.R, locals)
	default:
		panic(fmt.Sprintf("jvmgen: unhandled expression type %T", e))
	}
}

func emitBinary(op string, lExpr, rExpr ast0.Expr, locals *LocalEnv) (Result, error) {
	l, err := Emit(lExpr, locals)
	if err != nil {
		return Result{}, err
	}
	r, err := Emit(rExpr, locals)
	if err != nil {
		return Result{}, err
	}

	var code []string
	var height int
	var swapped bool

	if l.Height >= r.Height {
		code = append(append([]string{}, l.Code...), r.Code...)
		height = l.Height
		if l.Height == r.Height {
			height++
		}
	} else {
		code = append(append([]string{}, r.Code...), l.Code...)
		height = r.Height
		swapped = true
	}

	if swapped && !commutative(op) {
		code = append(code, "swap")
	}
	code = append(code, mnemonic(op))

	return Result{Code: code, Height: height}, nil
}
