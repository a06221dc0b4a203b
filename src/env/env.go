// Package env implements the symbol environment: an ordered stack of scope
// frames for variable bindings, plus a flat function signature table. It is
// adapted from the teacher's util.Stack (vslc/src/util/stack.go), stripped
// of its sync.Mutex and channel-based concurrent-push support: compilation
// here is single-threaded batch work, so there is exactly one call stack
// and no concurrent access to guard against.
package env

import (
	"fmt"

	"latc/src/ast"
	"latc/src/diag"
)

// Binding is (name, type, storage_ref). Storage is a
// backend-specific handle: for LLVM, the virtual register that holds the
// variable's alloca; for JVM, a local slot index. It is left untyped here
// because the two backends disagree on its shape.
type Binding struct {
	Name    string
	Type    ast.Type
	Storage interface{}
}

// scope is one frame of the environment: a mapping name -> Binding, unique
// within the frame.
type scope struct {
	vars map[string]*Binding
}

// Env is the ordered sequence of scope frames. Lookup searches
// innermost-first; declaration inserts into the innermost frame only.
type Env struct {
	frames []*scope
}

// New returns an environment with no scopes pushed.
func New() *Env {
	return &Env{}
}

// PushScope enters a new, empty lexical block.
func (e *Env) PushScope() {
	e.frames = append(e.frames, &scope{vars: make(map[string]*Binding)})
}

// PopScope exits the innermost lexical block.
func (e *Env) PopScope() {
	if len(e.frames) == 0 {
		return
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// Declare inserts b into the innermost scope. It fails with a
// diag.Redeclaration error if the innermost scope already binds b.Name;
// shadowing an outer frame is allowed.
func (e *Env) Declare(b *Binding, line, col int) *diag.Error {
	if len(e.frames) == 0 {
		return diag.New(diag.Redeclaration, line, col, "no active scope to declare %q in", b.Name)
	}
	top := e.frames[len(e.frames)-1]
	if _, ok := top.vars[b.Name]; ok {
		return diag.New(diag.Redeclaration, line, col, "variable %q already declared in this scope", b.Name)
	}
	top.vars[b.Name] = b
	return nil
}

// Lookup searches innermost-first and fails with diag.Undeclared if name is
// bound nowhere on the stack.
func (e *Env) Lookup(name string, line, col int) (*Binding, *diag.Error) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if b, ok := e.frames[i].vars[name]; ok {
			return b, nil
		}
	}
	return nil, diag.New(diag.Undeclared, line, col, "undeclared identifier %q", name)
}

// ---------------------------------------------------------------------------
// Function signature table
// ---------------------------------------------------------------------------

// FuncSig is (name, ret_type, [arg_type]*): the header only. Function
// bodies are not stored here; lowering emits them into llvmir directly.
type FuncSig struct {
	Name   string
	Ret    ast.Type
	Params []ast.Type
}

// FuncTable collects every built-in and user function signature, enforcing
// uniqueness of names across both sets and the "main: () -> Int" invariant.
type FuncTable struct {
	sigs map[string]*FuncSig
}

// NewFuncTable returns a table pre-populated with the L1 runtime ABI.
func NewFuncTable() *FuncTable {
	t := &FuncTable{sigs: make(map[string]*FuncSig)}
	builtins := []*FuncSig{
		{Name: "printInt", Ret: ast.Void, Params: []ast.Type{ast.Int}},
		{Name: "printString", Ret: ast.Void, Params: []ast.Type{ast.String}},
		{Name: "readInt", Ret: ast.Int, Params: nil},
		{Name: "readString", Ret: ast.String, Params: nil},
		{Name: "error", Ret: ast.Void, Params: nil},
	}
	for _, b := range builtins {
		t.sigs[b.Name] = b
	}
	return t
}

// Declare registers sig, failing with diag.DuplicateFunction if the name is
// already taken (by a built-in or another user function), and with
// diag.InvalidReturn if sig is "main" but does not have signature
// () -> Int.
func (t *FuncTable) Declare(sig *FuncSig, line, col int) *diag.Error {
	if _, ok := t.sigs[sig.Name]; ok {
		return diag.New(diag.DuplicateFunction, line, col, "function %q already declared", sig.Name)
	}
	if sig.Name == "main" {
		if sig.Ret != ast.Int || len(sig.Params) != 0 {
			return diag.New(diag.InvalidReturn, line, col, "main must have signature () -> int")
		}
	}
	t.sigs[sig.Name] = sig
	return nil
}

// Lookup retrieves a function signature by name.
func (t *FuncTable) Lookup(name string, line, col int) (*FuncSig, *diag.Error) {
	if s, ok := t.sigs[name]; ok {
		return s, nil
	}
	return nil, diag.New(diag.Undeclared, line, col, "undeclared function %q", name)
}

// HasMain reports whether a "main" signature has been declared.
func (t *FuncTable) HasMain() bool {
	_, ok := t.sigs["main"]
	return ok
}

// String renders the table for debugging.
func (t *FuncTable) String() string {
	return fmt.Sprintf("FuncTable{%d signatures}", len(t.sigs))
}
