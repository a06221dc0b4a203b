package checker

import (
	"latc/src/ast"
	"latc/src/diag"
	"latc/src/env"
	"latc/src/llvmir"
)

// flow is the "guaranteed return" signal a statement's lowering produces:
// either it does not guarantee a return along its path (returns == false),
// or every path through it ends in a return of type typ.
type flow struct {
	returns bool
	typ     ast.Type
}

// lowerBlock lowers a sequence of statements in the current scope (used
// directly for a function body, which already has its scope pushed by
// compileFunc). Its result is the first guaranteed-returning statement's
// flow, if any; lowering stops there, since anything after a terminator in
// the same straight-line block would be invalid IR.
func (c *ctx) lowerBlock(stmts []ast.Stmt) (flow, *diag.Error) {
	for _, s := range stmts {
		f, err := c.lowerStmt(s)
		if err != nil {
			return flow{}, err
		}
		if f.returns {
			return f, nil
		}
	}
	return flow{}, nil
}

func (c *ctx) lowerStmt(s ast.Stmt) (flow, *diag.Error) {
	switch st := s.(type) {
	case *ast.EmptyStmt:
		return flow{}, nil

	case *ast.BlockStmt:
		c.env.PushScope()
		f, err := c.lowerBlock(st.Stmts)
		c.env.PopScope()
		return f, err

	case *ast.DeclStmt:
		return flow{}, c.lowerDecl(st)

	case *ast.AssignStmt:
		return flow{}, c.lowerAssign(st)

	case *ast.IncrStmt:
		return flow{}, c.lowerIncrDecr(st.Name, "add", st.Line, st.Col)

	case *ast.DecrStmt:
		return flow{}, c.lowerIncrDecr(st.Name, "sub", st.Line, st.Col)

	case *ast.ReturnStmt:
		r, err := c.lowerExpr(st.Expr)
		if err != nil {
			return flow{}, err
		}
		if r.Type != c.fn.Ret {
			return flow{}, diag.New(diag.TypeMismatch, st.Line, st.Col,
				"function %q returns %s, got %s", c.fn.Name, c.fn.Ret, r.Type)
		}
		c.fc.Emit("ret " + llvmir.TypeName(r.Type) + " " + r.Operand)
		return flow{returns: true, typ: r.Type}, nil

	case *ast.ReturnVoidStmt:
		if c.fn.Ret != ast.Void {
			return flow{}, diag.New(diag.InvalidReturn, st.Line, st.Col,
				"function %q must return %s, got bare return", c.fn.Name, c.fn.Ret)
		}
		c.fc.Emit("ret void")
		return flow{returns: true, typ: ast.Void}, nil

	case *ast.IfStmt:
		return c.lowerIf(st)

	case *ast.WhileStmt:
		return c.lowerWhile(st)

	case *ast.ForStmt:
		return flow{}, diag.ExtensionError(st.Line, st.Col)

	case *ast.ExprStmt:
		_, err := c.lowerExpr(st.Expr)
		return flow{}, err

	default:
		return flow{}, diag.New(diag.InvalidOperator, 0, 0, "unhandled statement type %T", s)
	}
}

func (c *ctx) lowerDecl(st *ast.DeclStmt) *diag.Error {
	if st.Type == ast.Void {
		return diag.New(diag.VoidVariable, st.Line, st.Col, "cannot declare variable of type void")
	}
	for _, item := range st.Items {
		var value string
		if item.Init != nil {
			r, err := c.lowerExpr(item.Init)
			if err != nil {
				return err
			}
			if r.Type != st.Type {
				return diag.New(diag.TypeMismatch, item.Line, item.Col,
					"cannot initialize %s variable %q with %s", st.Type, item.Name, r.Type)
			}
			value = r.Operand
		} else {
			value = c.defaultValue(st.Type)
		}

		storage := c.fc.NewReg()
		c.fc.Emit(storage + " = alloca " + llvmir.TypeName(st.Type))
		c.fc.Emit("store " + llvmir.TypeName(st.Type) + " " + value + ", " + llvmir.TypeName(st.Type) + "* " + storage)
		if err := c.env.Declare(&env.Binding{Name: item.Name, Type: st.Type, Storage: storage}, item.Line, item.Col); err != nil {
			return err
		}
	}
	return nil
}

// defaultValue is the default initializer for a declaration with no
// explicit init: 0 for Int/Bool, an interned empty literal for String.
func (c *ctx) defaultValue(t ast.Type) string {
	if t == ast.String {
		return c.fc.InternString("")
	}
	return "0"
}

func (c *ctx) lowerAssign(st *ast.AssignStmt) *diag.Error {
	b, err := c.env.Lookup(st.Name, st.Line, st.Col)
	if err != nil {
		return err
	}
	r, err := c.lowerExpr(st.Expr)
	if err != nil {
		return err
	}
	if r.Type != b.Type {
		return diag.New(diag.TypeMismatch, st.Line, st.Col,
			"cannot assign %s to variable %q of type %s", r.Type, st.Name, b.Type)
	}
	storage := b.Storage.(string)
	c.fc.Emit("store " + llvmir.TypeName(b.Type) + " " + r.Operand + ", " + llvmir.TypeName(b.Type) + "* " + storage)
	return nil
}

func (c *ctx) lowerIncrDecr(name, mnemonic string, line, col int) *diag.Error {
	b, err := c.env.Lookup(name, line, col)
	if err != nil {
		return err
	}
	if b.Type != ast.Int {
		return diag.New(diag.TypeMismatch, line, col, "%q++/-- requires int, got %s", name, b.Type)
	}
	storage := b.Storage.(string)
	loaded := c.fc.NewReg()
	c.fc.Emit(loaded + " = load i32, i32* " + storage)
	result := c.fc.NewReg()
	c.fc.Emit(result + " = " + mnemonic + " i32 " + loaded + ", 1")
	c.fc.Emit("store i32 " + result + ", i32* " + storage)
	return nil
}

// lowerIf implements if-statement lowering, including constant-condition
// folding: a literal `true`/`false` condition is detected purely
// syntactically (after stripping parens) so the branch that can never run
// contributes no basic block, label, or branch instruction at all, rather
// than being folded away after emission.
func (c *ctx) lowerIf(st *ast.IfStmt) (flow, *diag.Error) {
	if lit, ok := unwrapParen(st.Cond).(*ast.BoolLit); ok {
		if lit.Val {
			return c.lowerStmt(st.Then)
		}
		if st.Else != nil {
			return c.lowerStmt(st.Else)
		}
		return flow{}, nil
	}

	cond, err := c.lowerExpr(st.Cond)
	if err != nil {
		return flow{}, err
	}
	if cond.Type != ast.Bool {
		return flow{}, diag.New(diag.TypeMismatch, st.Line, st.Col, "if condition must be bool, got %s", cond.Type)
	}

	lt := c.fc.NewLabel()
	lf := c.fc.NewLabel()
	lafter := lf
	if st.Else != nil {
		lafter = c.fc.NewLabel()
	}

	c.fc.Emit("br i1 " + cond.Operand + ", label %" + lt + ", label %" + lf)
	c.fc.EmitLabel(lt)
	thenFlow, err := c.lowerStmt(st.Then)
	if err != nil {
		return flow{}, err
	}
	if !thenFlow.returns {
		c.fc.Emit("br label %" + lafter)
	}

	if st.Else == nil {
		c.fc.EmitLabel(lf)
		return flow{}, nil
	}

	c.fc.EmitLabel(lf)
	elseFlow, err := c.lowerStmt(st.Else)
	if err != nil {
		return flow{}, err
	}
	if !elseFlow.returns {
		c.fc.Emit("br label %" + lafter)
	}

	if thenFlow.returns && elseFlow.returns && thenFlow.typ == elseFlow.typ {
		// Both arms guarantee a return of the same type: Lafter would have
		// no predecessor, so skip emitting it and propagate the shared
		// return type instead.
		return flow{returns: true, typ: thenFlow.typ}, nil
	}
	c.fc.EmitLabel(lafter)
	return flow{}, nil
}

// lowerWhile implements while-statement lowering. No loop-exit guarantee is
// inferred even if the body always returns.
func (c *ctx) lowerWhile(st *ast.WhileStmt) (flow, *diag.Error) {
	lCheck := c.fc.NewLabel()
	lBody := c.fc.NewLabel()
	lEnd := c.fc.NewLabel()

	c.fc.Emit("br label %" + lCheck)
	c.fc.EmitLabel(lCheck)
	cond, err := c.lowerExpr(st.Cond)
	if err != nil {
		return flow{}, err
	}
	if cond.Type != ast.Bool {
		return flow{}, diag.New(diag.TypeMismatch, st.Line, st.Col, "while condition must be bool, got %s", cond.Type)
	}
	c.fc.Emit("br i1 " + cond.Operand + ", label %" + lBody + ", label %" + lEnd)
	c.fc.EmitLabel(lBody)
	if _, err := c.lowerStmt(st.Body); err != nil {
		return flow{}, err
	}
	c.fc.Emit("br label %" + lCheck)
	c.fc.EmitLabel(lEnd)
	return flow{}, nil
}

// unwrapParen strips any number of transparent ParenExpr wrappers.
func unwrapParen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.Inner
	}
}
