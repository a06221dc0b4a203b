// Package session carries per-compilation configuration, modeled on the
// teacher's util.Options (vslc/src/util/args.go). The CLI flag parser that
// built an Options there is not reproduced here: a file-I/O driver CLI is
// out of scope for this module, so Options is constructed directly by
// callers (library entry points in checker/lower0, or tests) instead of
// from os.Args.
package session

import "io"

// Target selects which backend an Options-driven compile targets. Unlike
// the teacher's TargetArch (a machine-architecture selector for its
// ARM/RISC-V backends), this module recognizes exactly two output
// backends.
type Target int

const (
	JVM Target = iota
	LLVM
)

// Options is the single configuration value threaded through a compilation.
// It intentionally holds no counters, buffers or pools: those are owned by
// llvmir.Module/FuncCtx and jvmgen.LocalEnv, one instance per compilation,
// rather than by package-level state as in the teacher.
type Options struct {
	// ClassName names the generated JVM class (JVM backend only); it
	// corresponds to the base name of the source file a real driver would
	// derive it from. lower0.ToLLVM ignores it.
	ClassName string
	// Verbose, like the teacher's -vb flag, requests that the assembled
	// module text also be written to Debug as it is produced, rather than
	// only returned on success.
	Verbose bool
	// Debug receives the assembled module text when Verbose is set. A nil
	// Debug silences the dump even if Verbose is true; tests typically set
	// this to a bytes.Buffer to assert on the dumped text.
	Debug io.Writer
}
