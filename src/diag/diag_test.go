package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFormat(t *testing.T) {
	err := New(TypeMismatch, 3, 5, "cannot assign %s to %s", "string", "int")
	source := []string{"int x = 1;", "int y = 2;", "x = \"oops\";"}

	got := Report(err, source)
	want := "ERROR\n" +
		"Compilation error in line 3:\n" +
		"x = \"oops\";\n" +
		"cannot assign string to int\n"
	assert.Equal(t, want, got)
}

func TestReportToleratesMissingSourceLine(t *testing.T) {
	err := New(MissingMain, 0, 0, "program does not declare a main function")
	got := Report(err, nil)
	assert.Equal(t, "ERROR\nCompilation error in line 0:\nprogram does not declare a main function\n", got)
}

func TestExtensionErrorFixedMessage(t *testing.T) {
	err := ExtensionError(1, 1)
	assert.Equal(t, Extension, err.Kind)
	assert.Equal(t, "Latte extension, not implemented", err.Msg)
}
