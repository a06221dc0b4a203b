package llvmir

import "strings"

// FuncCtx is the per-function emission state: virtual register and label
// counters reset at function entry, and the buffer of textual LLVM lines
// for the function currently being lowered.
type FuncCtx struct {
	m        *Module
	regSeq   int
	labelSeq int
	lines    []string
	cur      string
}

// NewFuncCtx starts a fresh per-function context bound to m; counters begin
// so the first register/label issued is %.t1/L1 (register/label 0 is
// reserved to keep %.t0-as-zero-value bugs from silently aliasing a real
// register in manual review).
func (m *Module) NewFuncCtx() *FuncCtx {
	return &FuncCtx{m: m, cur: "entry"}
}

// Current returns the label of the basic block currently being emitted
// into, needed to name phi predecessors for short-circuit && / || lowering.
func (f *FuncCtx) Current() string { return f.cur }

// NewReg returns a fresh virtual register name, "%.tN" with N monotonic
// within this function.
func (f *FuncCtx) NewReg() string {
	f.regSeq++
	return "%.t" + itoa(f.regSeq)
}

// NewLabel returns a fresh basic-block label name, "LN" with N monotonic
// within this function.
func (f *FuncCtx) NewLabel() string {
	f.labelSeq++
	return "L" + itoa(f.labelSeq)
}

// Emit appends one instruction line, indented four spaces; all non-label
// lines are indented this way.
func (f *FuncCtx) Emit(line string) {
	f.lines = append(f.lines, "    "+line)
}

// EmitLabel opens a new basic block: the label name followed by ':', with
// no leading indentation.
func (f *FuncCtx) EmitLabel(name string) {
	f.lines = append(f.lines, name+":")
	f.cur = name
}

// InternString interns content into the module's string pool (creating a
// fresh "@.strN" entry the first time content is seen) and emits the
// getelementptr that decays the pool entry's array type to i8*. It returns
// the register holding the resulting i8*.
func (f *FuncCtx) InternString(content string) string {
	name := f.m.intern(content)
	n := len(content) + 1
	reg := f.NewReg()
	f.Emit(reg + " = getelementptr [" + itoa(n) + " x i8], [" + itoa(n) + " x i8]* " + name + ", i32 0, i32 0")
	return reg
}

// MarkUsed forwards to the owning Module; kept on FuncCtx so lowering code
// only has to hold one handle while emitting a function body.
func (f *FuncCtx) MarkUsed(name string) { f.m.MarkUsed(name) }

// Finish returns the assembled, brace-delimited function body: "define T
// @name(args) {", an implicit "entry:" first line, the buffered
// instructions, and the closing brace.
func (f *FuncCtx) Finish(header string) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(" {\n")
	sb.WriteString("entry:\n")
	for _, l := range f.lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}
