// Package llvmir is the LLVM IR emitter: it appends lines of textual LLVM
// to a per-function buffer, issues fresh virtual registers and labels, and
// tracks the string-literal pool and used-builtin set for a whole
// compilation.
//
// The teacher (vslc/src/ir/llvm/transform.go) builds an in-process
// llvm.Module via tinygo.org/x/go-llvm's C API bindings and a
// goroutine-per-function worker pool guarded by a sync.RWMutex symbol
// table. Neither survives here: this module emits literal textual IR with
// a specific register/label naming contract (%.tN, LN) handed to an
// external llvm-as, and compilation is single-threaded batch work. This
// package instead threads one explicit *Module (and one *FuncCtx per
// function) through the traversal, per the "explicit compiler-session
// context" design note.
package llvmir

// declareSig is the textual LLVM declaration for one runtime ABI entry
// point.
var declareSig = map[string]string{
	"printInt":    "declare void @printInt(i32)",
	"printString": "declare void @printString(i8*)",
	"error":       "declare void @error()",
	"readInt":     "declare i32 @readInt()",
	"readString":  "declare i8* @readString()",
	"strcmp":      "declare i32 @strcmp(i8*, i8*)",
	"strconcat":   "declare i8* @strconcat(i8*, i8*)",
}

// stringEntry is one content-addressed entry of the module's string pool.
type stringEntry struct {
	name  string
	bytes string // the literal payload, not including the trailing NUL
}

// Module holds the program-wide state of an LLVM lowering: the
// content-addressed string literal pool and the set of runtime builtins
// referenced by any function, plus the accumulated text of each lowered
// function body.
type Module struct {
	stringByContent map[string]string // content -> pool name, for dedup
	stringOrder     []stringEntry     // emission order
	used            map[string]bool
	funcBodies      []string
}

// NewModule returns an empty, program-wide LLVM lowering session.
func NewModule() *Module {
	return &Module{
		stringByContent: make(map[string]string),
		used:            make(map[string]bool),
	}
}

// MarkUsed records that builtin name was referenced by some function body.
func (m *Module) MarkUsed(name string) {
	m.used[name] = true
}

// intern returns the pool name for content, creating a fresh entry named
// "@.strN" (N monotonic) the first time a given byte sequence is seen.
// Identical contents always share one entry and one name.
func (m *Module) intern(content string) string {
	if name, ok := m.stringByContent[content]; ok {
		return name
	}
	name := "@.str" + itoa(len(m.stringOrder))
	m.stringByContent[content] = name
	m.stringOrder = append(m.stringOrder, stringEntry{name: name, bytes: content})
	return name
}

// AddFuncBody appends the finished text of one lowered function to the
// module's output, in the order functions are lowered.
func (m *Module) AddFuncBody(text string) {
	m.funcBodies = append(m.funcBodies, text)
}

// Assemble produces the final module text in a fixed order: declare lines
// for each used builtin, a blank line, the string-constant globals, a
// blank line, then each function body, with exactly one trailing newline.
func (m *Module) Assemble() string {
	var b builder

	// Declare lines, in a fixed, deterministic order rather than used-set
	// iteration order (Go map iteration is randomized).
	for _, name := range []string{"printInt", "printString", "error", "readInt", "readString", "strcmp", "strconcat"} {
		if m.used[name] {
			b.line(declareSig[name])
		}
	}
	b.blank()

	for _, e := range m.stringOrder {
		b.line(globalStringDef(e.name, e.bytes))
	}
	b.blank()

	for i, f := range m.funcBodies {
		b.raw(f)
		if i != len(m.funcBodies)-1 {
			b.blank()
		}
	}

	return b.finish()
}

// globalStringDef renders one @.strN global: a zero terminated byte array
// whose length is len(content)+1.
func globalStringDef(name, content string) string {
	n := len(content) + 1
	return name + " = internal constant [" + itoa(n) + " x i8] c\"" + escapeLLVMString(content) + "\\00\""
}

// escapeLLVMString escapes bytes the way LLVM's textual string literals
// require: printable ASCII passes through, everything else becomes \XX.
func escapeLLVMString(s string) string {
	const hex = "0123456789ABCDEF"
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' || c < 0x20 || c >= 0x7f {
			out = append(out, '\\', hex[c>>4], hex[c&0xf])
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
