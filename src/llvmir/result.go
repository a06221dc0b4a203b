package llvmir

import "latc/src/ast"

// ExprResult is the product of lowering one expression: (type, operand,
// finish_label?). Operand is either a literal token ("0", "1", an integer
// literal, or the element-pointer register addressing a string literal) or
// a virtual register reference. FinishLabel is only set by short-circuit
// boolean expressions: it names the basic block in which the phi-node
// materializes the final value, so an enclosing short-circuit can wire its
// own phi's predecessor to the right block.
type ExprResult struct {
	Type        ast.Type
	Operand     string
	FinishLabel string
}

// Finish returns where r's value is visible from: FinishLabel if the
// expression spans multiple basic blocks, or fallback otherwise (normally
// the label of the block the caller was already emitting into).
func (r ExprResult) Finish(fallback string) string {
	if r.FinishLabel != "" {
		return r.FinishLabel
	}
	return fallback
}
