package checker

import (
	"strconv"

	"latc/src/ast"
	"latc/src/diag"
	"latc/src/llvmir"
)

// icmpPred is a lookup-table compatibility matrix, adapted from the
// teacher's lutExp (vslc/src/ir/validate.go): it maps each relational
// source operator to its LLVM icmp predicate. Relational operators accept
// Int, Bool and String operands alike — unusual, but intentional (see
// DESIGN.md's open-question note).
var icmpPred = map[string]string{
	"<":  "slt",
	"<=": "sle",
	">":  "sgt",
	">=": "sge",
	"==": "eq",
	"!=": "ne",
}

func (c *ctx) lowerExpr(e ast.Expr) (llvmir.ExprResult, *diag.Error) {
	switch ex := e.(type) {
	case *ast.IntLit:
		return llvmir.ExprResult{Type: ast.Int, Operand: strconv.Itoa(int(ex.Val))}, nil

	case *ast.BoolLit:
		op := "0"
		if ex.Val {
			op = "1"
		}
		return llvmir.ExprResult{Type: ast.Bool, Operand: op}, nil

	case *ast.StrLit:
		return llvmir.ExprResult{Type: ast.String, Operand: c.fc.InternString(ex.Val)}, nil

	case *ast.VarExpr:
		return c.lowerVar(ex)

	case *ast.ParenExpr:
		return c.lowerExpr(ex.Inner)

	case *ast.NegExpr:
		inner, err := c.lowerExpr(ex.Inner)
		if err != nil {
			return llvmir.ExprResult{}, err
		}
		if inner.Type != ast.Int {
			line, col := ex.Pos()
			return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, line, col, "unary - requires int, got %s", inner.Type)
		}
		reg := c.fc.NewReg()
		c.fc.Emit(reg + " = sub i32 0, " + inner.Operand)
		return llvmir.ExprResult{Type: ast.Int, Operand: reg}, nil

	case *ast.NotExpr:
		inner, err := c.lowerExpr(ex.Inner)
		if err != nil {
			return llvmir.ExprResult{}, err
		}
		if inner.Type != ast.Bool {
			line, col := ex.Pos()
			return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, line, col, "unary ! requires bool, got %s", inner.Type)
		}
		reg := c.fc.NewReg()
		c.fc.Emit(reg + " = xor i1 " + inner.Operand + ", 1")
		return llvmir.ExprResult{Type: ast.Bool, Operand: reg}, nil

	case *ast.AppExpr:
		return c.lowerApp(ex)

	case *ast.BinExpr:
		return c.lowerBin(ex)

	case *ast.AndExpr:
		return c.lowerShortCircuit(ex.L, ex.R, true)

	case *ast.OrExpr:
		return c.lowerShortCircuit(ex.L, ex.R, false)

	default:
		return llvmir.ExprResult{}, diag.New(diag.InvalidOperator, 0, 0, "unhandled expression type %T", e)
	}
}

func (c *ctx) lowerVar(ex *ast.VarExpr) (llvmir.ExprResult, *diag.Error) {
	b, err := c.env.Lookup(ex.Name, ex.Line, ex.Col)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	storage := b.Storage.(string)
	reg := c.fc.NewReg()
	c.fc.Emit(reg + " = load " + llvmir.TypeName(b.Type) + ", " + llvmir.TypeName(b.Type) + "* " + storage)
	return llvmir.ExprResult{Type: b.Type, Operand: reg}, nil
}

var builtinNames = map[string]bool{
	"printInt":    true,
	"printString": true,
	"readInt":     true,
	"readString":  true,
	"error":       true,
}

func (c *ctx) lowerApp(ex *ast.AppExpr) (llvmir.ExprResult, *diag.Error) {
	sig, err := c.funcs.Lookup(ex.Func, ex.Line, ex.Col)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	if len(ex.Args) != len(sig.Params) {
		return llvmir.ExprResult{}, diag.New(diag.Arity, ex.Line, ex.Col,
			"%q expects %d argument(s), got %d", ex.Func, len(sig.Params), len(ex.Args))
	}

	argText := ""
	for i, a := range ex.Args {
		r, err := c.lowerExpr(a)
		if err != nil {
			return llvmir.ExprResult{}, err
		}
		if r.Type != sig.Params[i] {
			line, col := a.Pos()
			return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, line, col,
				"argument %d of %q: expected %s, got %s", i+1, ex.Func, sig.Params[i], r.Type)
		}
		if i > 0 {
			argText += ", "
		}
		argText += llvmir.TypeName(r.Type) + " " + r.Operand
	}

	if builtinNames[ex.Func] {
		c.fc.MarkUsed(ex.Func)
	}

	call := "call " + llvmir.TypeName(sig.Ret) + " @" + ex.Func + "(" + argText + ")"
	if sig.Ret == ast.Void {
		c.fc.Emit(call)
		return llvmir.ExprResult{Type: ast.Void}, nil
	}
	reg := c.fc.NewReg()
	c.fc.Emit(reg + " = " + call)
	return llvmir.ExprResult{Type: sig.Ret, Operand: reg}, nil
}

func (c *ctx) lowerBin(ex *ast.BinExpr) (llvmir.ExprResult, *diag.Error) {
	if _, ok := icmpPred[ex.Op]; ok {
		return c.lowerRel(ex)
	}
	switch ex.Op {
	case "+":
		return c.lowerAdd(ex)
	case "-", "*", "/", "%":
		return c.lowerArith(ex)
	default:
		return llvmir.ExprResult{}, diag.New(diag.InvalidOperator, ex.Line, ex.Col, "unknown operator %q", ex.Op)
	}
}

func (c *ctx) lowerRel(ex *ast.BinExpr) (llvmir.ExprResult, *diag.Error) {
	l, err := c.lowerExpr(ex.L)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	r, err := c.lowerExpr(ex.R)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	if l.Type != r.Type {
		return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, ex.Line, ex.Col,
			"operator %q requires matching operand types, got %s and %s", ex.Op, l.Type, r.Type)
	}
	pred := icmpPred[ex.Op]

	switch l.Type {
	case ast.Int, ast.Bool:
		reg := c.fc.NewReg()
		c.fc.Emit(reg + " = icmp " + pred + " " + llvmir.TypeName(l.Type) + " " + l.Operand + ", " + r.Operand)
		return llvmir.ExprResult{Type: ast.Bool, Operand: reg}, nil
	case ast.String:
		c.fc.MarkUsed("strcmp")
		cmp := c.fc.NewReg()
		c.fc.Emit(cmp + " = call i32 @strcmp(i8* " + l.Operand + ", i8* " + r.Operand + ")")
		reg := c.fc.NewReg()
		c.fc.Emit(reg + " = icmp " + pred + " i32 " + cmp + ", 0")
		return llvmir.ExprResult{Type: ast.Bool, Operand: reg}, nil
	default:
		return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, ex.Line, ex.Col,
			"operator %q is not defined for %s", ex.Op, l.Type)
	}
}

func (c *ctx) lowerAdd(ex *ast.BinExpr) (llvmir.ExprResult, *diag.Error) {
	l, err := c.lowerExpr(ex.L)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	r, err := c.lowerExpr(ex.R)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	if l.Type != r.Type {
		return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, ex.Line, ex.Col,
			"operator + requires matching operand types, got %s and %s", l.Type, r.Type)
	}
	switch l.Type {
	case ast.Int:
		reg := c.fc.NewReg()
		c.fc.Emit(reg + " = add i32 " + l.Operand + ", " + r.Operand)
		return llvmir.ExprResult{Type: ast.Int, Operand: reg}, nil
	case ast.String:
		c.fc.MarkUsed("strconcat")
		reg := c.fc.NewReg()
		c.fc.Emit(reg + " = call i8* @strconcat(i8* " + l.Operand + ", i8* " + r.Operand + ")")
		return llvmir.ExprResult{Type: ast.String, Operand: reg}, nil
	default:
		return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, ex.Line, ex.Col,
			"operator + is not defined for %s", l.Type)
	}
}

func (c *ctx) lowerArith(ex *ast.BinExpr) (llvmir.ExprResult, *diag.Error) {
	l, err := c.lowerExpr(ex.L)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	r, err := c.lowerExpr(ex.R)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	if l.Type != ast.Int || r.Type != ast.Int {
		return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, ex.Line, ex.Col,
			"operator %q requires int operands, got %s and %s", ex.Op, l.Type, r.Type)
	}
	var mnemonic string
	switch ex.Op {
	case "-":
		mnemonic = "sub"
	case "*":
		mnemonic = "mul"
	case "/":
		mnemonic = "sdiv"
	case "%":
		mnemonic = "srem"
	}
	reg := c.fc.NewReg()
	c.fc.Emit(reg + " = " + mnemonic + " i32 " + l.Operand + ", " + r.Operand)
	return llvmir.ExprResult{Type: ast.Int, Operand: reg}, nil
}

// lowerShortCircuit implements `&&` (isAnd) and `||` lowering: L is always
// evaluated; R is only evaluated in the branch where it can change the
// result. A final phi node in the merge block materializes the value,
// avoiding re-evaluation of either operand.
func (c *ctx) lowerShortCircuit(lExpr, rExpr ast.Expr, isAnd bool) (llvmir.ExprResult, *diag.Error) {
	l, err := c.lowerExpr(lExpr)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	if l.Type != ast.Bool {
		line, col := lExpr.Pos()
		return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, line, col, "operand of &&/|| must be bool, got %s", l.Type)
	}
	lhsBlock := l.Finish(c.fc.Current())

	rhsLabel := c.fc.NewLabel()
	contLabel := c.fc.NewLabel()
	if isAnd {
		c.fc.Emit("br i1 " + l.Operand + ", label %" + rhsLabel + ", label %" + contLabel)
	} else {
		c.fc.Emit("br i1 " + l.Operand + ", label %" + contLabel + ", label %" + rhsLabel)
	}

	c.fc.EmitLabel(rhsLabel)
	r, err := c.lowerExpr(rExpr)
	if err != nil {
		return llvmir.ExprResult{}, err
	}
	if r.Type != ast.Bool {
		line, col := rExpr.Pos()
		return llvmir.ExprResult{}, diag.New(diag.TypeMismatch, line, col, "operand of &&/|| must be bool, got %s", r.Type)
	}
	rhsBlock := r.Finish(c.fc.Current())
	c.fc.Emit("br label %" + contLabel)

	c.fc.EmitLabel(contLabel)
	reg := c.fc.NewReg()
	shortValue := "1"
	if isAnd {
		shortValue = "0"
	}
	c.fc.Emit(reg + " = phi i1 [ " + shortValue + ", %" + lhsBlock + " ], [ " + r.Operand + ", %" + rhsBlock + " ]")
	return llvmir.ExprResult{Type: ast.Bool, Operand: reg, FinishLabel: contLabel}, nil
}
