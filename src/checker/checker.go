// Package checker implements the L1 checker+lowerer: a single traversal
// combining type-checking with LLVM emission. It is the central component
// of this module.
//
// The teacher's closest analogue is vslc/src/ir/validate.go, which
// separately type-checks an already-generated syntax tree using a
// lookup-table compatibility matrix (lutExp/lutAssign) and a
// sync.WaitGroup-based worker pool for parallel per-function validation.
// This package keeps the lookup-table idea (see icmpPred in expr.go) but
// combines checking with emission in one pass, and drops the worker pool
// entirely: compilation here is single-threaded batch work, and
// single-pass check+emit makes a second, parallel validation pass
// meaningless anyway.
package checker

import (
	"fmt"
	"strconv"

	"latc/src/ast"
	"latc/src/diag"
	"latc/src/env"
	"latc/src/llvmir"
	"latc/src/session"
)

// Compile type-checks prog and lowers it to a textual LLVM IR module, using
// a two-pass design: signatures are collected before any body is lowered,
// so mutual recursion and forward references work. When opts.Verbose is
// set, the assembled module text is also written to opts.Debug (if
// non-nil) before returning, for inspection during tests and debugging.
func Compile(prog *ast.Program, opts session.Options) (string, *diag.Error) {
	funcs := env.NewFuncTable()

	// Pass 1: signature collection.
	var funcDefs []*ast.FuncDef
	for _, td := range prog.TopDefs {
		switch d := td.(type) {
		case *ast.FuncDef:
			sig := &env.FuncSig{Name: d.Name, Ret: d.Ret}
			for _, p := range d.Params {
				sig.Params = append(sig.Params, p.Type)
			}
			if err := funcs.Declare(sig, d.Line, d.Col); err != nil {
				return "", err
			}
			funcDefs = append(funcDefs, d)
		case *ast.ClassDef:
			return "", diag.ExtensionError(d.Line, d.Col)
		}
	}
	if !funcs.HasMain() {
		return "", diag.New(diag.MissingMain, 0, 0, "program does not declare a main function")
	}

	// Pass 2: bodies.
	mod := llvmir.NewModule()
	for _, d := range funcDefs {
		if err := compileFunc(mod, funcs, d); err != nil {
			return "", err
		}
	}

	out := mod.Assemble()
	if opts.Verbose && opts.Debug != nil {
		fmt.Fprintln(opts.Debug, out)
	}
	return out, nil
}

// compileFunc lowers one function: resets per-function counters (a fresh
// llvmir.FuncCtx), pushes a scope, binds each parameter to a fresh local
// allocation uniformly with ordinary locals, then lowers the body.
func compileFunc(mod *llvmir.Module, funcs *env.FuncTable, d *ast.FuncDef) *diag.Error {
	fc := mod.NewFuncCtx()
	e := env.New()
	e.PushScope()
	defer e.PopScope()

	paramDecls := make([]string, len(d.Params))
	for i, p := range d.Params {
		incoming := "%arg" + strconv.Itoa(i)
		paramDecls[i] = llvmir.TypeName(p.Type) + " " + incoming

		storage := fc.NewReg()
		fc.Emit(storage + " = alloca " + llvmir.TypeName(p.Type))
		fc.Emit("store " + llvmir.TypeName(p.Type) + " " + incoming + ", " + llvmir.TypeName(p.Type) + "* " + storage)
		if err := e.Declare(&env.Binding{Name: p.Name, Type: p.Type, Storage: storage}, d.Line, d.Col); err != nil {
			return err
		}
	}

	c := &ctx{mod: mod, fc: fc, env: e, funcs: funcs, fn: d}
	flow, err := c.lowerBlock(d.Body)
	if err != nil {
		return err
	}
	if !flow.returns {
		if d.Ret != ast.Void {
			return diag.New(diag.MissingReturn, d.Line, d.Col, "function %q does not return on every path", d.Name)
		}
		fc.Emit("ret void")
	}

	header := "define " + llvmir.TypeName(d.Ret) + " @" + d.Name + "(" + joinComma(paramDecls) + ")"
	mod.AddFuncBody(fc.Finish(header))
	return nil
}

// ctx bundles the per-function state lowering needs: the owning module
// (for string interning and the used-builtin set), the function's
// llvmir.FuncCtx, its symbol environment, the whole-program function
// table, and the enclosing function definition (for checking return
// types).
type ctx struct {
	mod   *llvmir.Module
	fc    *llvmir.FuncCtx
	env   *env.Env
	funcs *env.FuncTable
	fn    *ast.FuncDef
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
