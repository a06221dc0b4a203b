// Package assemble is the JVM side of the program assembler: it produces the
// final textual artifact by wrapping a JVM method body in the fixed class
// template (class name, limit locals, limit stack parameterized). LLVM
// module assembly is not done here; llvmir.Module.Assemble does it. Grounded
// on the JVM_TEMPLATE constant in
// _examples/original_source/instant/src/JVMCompiler.py.
package assemble

import "strconv"

// JVMPrintInt is the fixed instruction sequence a print statement lowers
// to: fetch System.out, swap it below the already-pushed int, then invoke
// println(I)V (original JVMCompiler.py JVM_PRINT_INT).
var JVMPrintInt = []string{
	"getstatic java/lang/System/out Ljava/io/PrintStream;",
	"swap",
	"invokevirtual java/io/PrintStream/println(I)V",
}

// JVM wraps body (already-indented instruction text, one per line) in the
// fixed Jasmin class template, parameterized by class name and the computed
// "limit locals"/"limit stack" header fields.
func JVM(className string, limitLocals, limitStack int, body string) string {
	return "" +
		".source " + className + ".j\n" +
		".class public " + className + "\n" +
		".super java/lang/Object\n" +
		"\n" +
		".method public <init>()V\n" +
		"    aload_0\n" +
		"    invokespecial java/lang/Object/<init>()V\n" +
		"    return\n" +
		".end method\n" +
		"\n" +
		".method public static main([Ljava/lang/String;)V\n" +
		".limit locals " + strconv.Itoa(limitLocals) + "\n" +
		".limit stack " + strconv.Itoa(limitStack) + "\n" +
		body + "\n" +
		"    return\n" +
		".end method\n"
}
