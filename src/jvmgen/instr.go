package jvmgen

import "strconv"

// Load returns the JVM mnemonic to push local slot onto the stack, using
// the compressed iload_k form for k in [0,3] and the general iload k form
// otherwise.
func Load(slot int) string {
	if slot >= 0 && slot <= 3 {
		return "iload_" + strconv.Itoa(slot)
	}
	return "iload " + strconv.Itoa(slot)
}

// Store is Load's dual for popping the stack top into a local slot.
func Store(slot int) string {
	if slot >= 0 && slot <= 3 {
		return "istore_" + strconv.Itoa(slot)
	}
	return "istore " + strconv.Itoa(slot)
}

// Const selects the most compact instruction that pushes the integer
// constant n: iconst_m1 for -1, iconst_k for k in [0,5], bipush for 8-bit
// immediates, sipush for 16-bit immediates, and ldc otherwise.
func Const(n int32) string {
	switch {
	case n == -1:
		return "iconst_m1"
	case n >= 0 && n <= 5:
		return "iconst_" + strconv.Itoa(int(n))
	case n >= -128 && n <= 127:
		return "bipush " + strconv.Itoa(int(n))
	case n >= -32768 && n <= 32767:
		return "sipush " + strconv.Itoa(int(n))
	default:
		return "ldc " + strconv.Itoa(int(n))
	}
}
