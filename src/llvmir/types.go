package llvmir

import "latc/src/ast"

// TypeName returns the LLVM textual type for an L1 value type.
func TypeName(t ast.Type) string {
	switch t {
	case ast.Int:
		return "i32"
	case ast.Bool:
		return "i1"
	case ast.String:
		return "i8*"
	case ast.Void:
		return "void"
	default:
		return "?"
	}
}

