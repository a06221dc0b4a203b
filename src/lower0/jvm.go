package lower0

import (
	"fmt"
	"strings"

	"latc/src/assemble"
	"latc/src/ast0"
	"latc/src/jvmgen"
	"latc/src/session"
)

// ToJVM lowers an L0 program to a complete Jasmin-assembler text, using the
// Ershov stack-height oracle (jvmgen) to schedule every binary operator's
// operands and the fixed class template from package assemble. The class
// name comes from opts.ClassName. When opts.Verbose is set, the assembled
// text is also written to opts.Debug (if non-nil) before returning.
func ToJVM(prog []ast0.Stmt, opts session.Options) (string, error) {
	locals := jvmgen.NewLocalEnv()
	var lines []string
	stackLimit := 0

	for _, s := range prog {
		switch st := s.(type) {
		case *ast0.AssignStmt:
			r, err := jvmgen.Emit(st.Expr, locals)
			if err != nil {
				return "", err
			}
			slot := locals.Slot(st.Name)
			lines = append(lines, r.Code...)
			lines = append(lines, jvmgen.Store(slot))
			if r.Height > stackLimit {
				stackLimit = r.Height
			}
		case *ast0.PrintStmt:
			r, err := jvmgen.Emit(st.Expr, locals)
			if err != nil {
				return "", err
			}
			lines = append(lines, r.Code...)
			lines = append(lines, assemble.JVMPrintInt...)
			h := r.Height
			if h < 2 {
				// A print needs System.out and the int both on the stack:
				// two slots minimum.
				h = 2
			}
			if h > stackLimit {
				stackLimit = h
			}
		}
	}

	indented := make([]string, len(lines))
	for i, l := range lines {
		indented[i] = "    " + l
	}
	bodyText := strings.Join(indented, "\n")

	out := assemble.JVM(opts.ClassName, locals.LocalsCount(), stackLimit, bodyText)
	if opts.Verbose && opts.Debug != nil {
		fmt.Fprintln(opts.Debug, out)
	}
	return out, nil
}
