package llvmir

import (
	"strconv"
	"strings"
)

func itoa(n int) string { return strconv.Itoa(n) }

// builder accumulates module text line by line, collapsing the separator
// blanks that Assemble inserts unconditionally around empty sections so
// that, e.g., a module with no used builtins does not start with a bare
// blank line before its string-constant section: an empty section
// contributes nothing to the output.
type builder struct {
	lines     []string
	pendBlank bool
	wroteAny  bool
}

func (b *builder) line(s string) {
	if b.pendBlank && b.wroteAny {
		b.lines = append(b.lines, "")
	}
	b.pendBlank = false
	b.lines = append(b.lines, s)
	b.wroteAny = true
}

func (b *builder) raw(s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		b.line(l)
	}
}

func (b *builder) blank() {
	if b.wroteAny {
		b.pendBlank = true
	}
}

func (b *builder) finish() string {
	return strings.Join(b.lines, "\n") + "\n"
}
