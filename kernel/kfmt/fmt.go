// Package kfmt implements allocation-free formatted output for kernel code
// that runs before the Go allocator, scheduler or a console is available.
package kfmt

import (
	"io"
	"unsafe"
)

// numBufSize is the size of the scratch buffer used for formatting integers.
// It also caps the width that can be requested for an integer verb.
const numBufSize = 32

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")

	numBuf [numBufSize]byte

	// oneByte is a shared buffer for emitting single characters. Slicing
	// a string would force an allocation.
	oneByte [1]byte

	// earlyPrintBuffer captures Printf output until SetOutputSink is called.
	earlyPrintBuffer ringBuffer

	// outputSink receives Printf output. While nil, output goes to
	// earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink makes w the target of Printf and flushes any output that was
// buffered before a sink was available into it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// Printf formats according to a format specifier and writes to the active
// output sink. It is safe to call before the Go runtime is initialized as it
// never allocates memory.
//
// Supported verbs:
//
//	%s string or []byte
//	%d integer, base 10
//	%x integer, base 16 (lower case)
//	%o integer, base 8
//	%t bool
//
// An optional decimal width may precede the verb. Strings and base-10
// integers are left-padded with spaces; base-16 and base-8 integers are
// left-padded with zeroes.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves like Printf but writes its output to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		argIndex int
		width    int
	)

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			writeByte(w, format[i])
			continue
		}

		width = 0
		for i++; i < len(format) && format[i] >= '0' && format[i] <= '9'; i++ {
			width = width*10 + int(format[i]-'0')
		}

		if i == len(format) {
			write(w, errNoVerb)
			break
		}

		verb := format[i]
		switch verb {
		case '%':
			writeByte(w, '%')
			continue
		case 's', 'd', 'x', 'o', 't':
		default:
			write(w, errNoVerb)
			continue
		}

		if argIndex >= len(args) {
			write(w, errMissingArg)
			continue
		}

		arg := args[argIndex]
		argIndex++

		switch verb {
		case 's':
			fmtString(w, arg, width)
		case 'd':
			fmtInt(w, arg, 10, width)
		case 'x':
			fmtInt(w, arg, 16, width)
		case 'o':
			fmtInt(w, arg, 8, width)
		case 't':
			fmtBool(w, arg)
		}
	}

	for ; argIndex < len(args); argIndex++ {
		write(w, errExtraArg)
	}
}

func fmtBool(w io.Writer, v interface{}) {
	b, ok := v.(bool)
	switch {
	case !ok:
		write(w, errWrongArgType)
	case b:
		write(w, trueValue)
	default:
		write(w, falseValue)
	}
}

func fmtString(w io.Writer, v interface{}, width int) {
	switch s := v.(type) {
	case string:
		pad(w, ' ', width-len(s))
		for i := 0; i < len(s); i++ {
			writeByte(w, s[i])
		}
	case []byte:
		pad(w, ' ', width-len(s))
		write(w, s)
	default:
		write(w, errWrongArgType)
	}
}

func pad(w io.Writer, ch byte, count int) {
	for ; count > 0; count-- {
		writeByte(w, ch)
	}
}

// fmtInt writes v in the requested base. All built-in integer types are
// supported.
func fmtInt(w io.Writer, v interface{}, base uint64, width int) {
	var (
		mag uint64
		neg bool
	)

	switch n := v.(type) {
	case uint8:
		mag = uint64(n)
	case uint16:
		mag = uint64(n)
	case uint32:
		mag = uint64(n)
	case uint64:
		mag = n
	case uint:
		mag = uint64(n)
	case uintptr:
		mag = uint64(n)
	case int8:
		mag, neg = signed(int64(n))
	case int16:
		mag, neg = signed(int64(n))
	case int32:
		mag, neg = signed(int64(n))
	case int64:
		mag, neg = signed(n)
	case int:
		mag, neg = signed(int64(n))
	default:
		write(w, errWrongArgType)
		return
	}

	if width >= numBufSize {
		width = numBufSize - 1
	}

	padCh := byte('0')
	if base == 10 {
		padCh = ' '
	}

	// Digits are produced right to left.
	pos := numBufSize
	for {
		pos--
		digit := byte(mag % base)
		if digit < 10 {
			numBuf[pos] = '0' + digit
		} else {
			numBuf[pos] = 'a' + digit - 10
		}

		if mag /= base; mag == 0 {
			break
		}
	}

	// Space padding goes before the sign, zero padding after it.
	if neg && padCh == ' ' {
		pos--
		numBuf[pos] = '-'
	}

	signLen := 0
	if neg && padCh == '0' {
		signLen = 1
	}

	for numBufSize-pos+signLen < width && pos > signLen {
		pos--
		numBuf[pos] = padCh
	}

	if neg && padCh == '0' {
		pos--
		numBuf[pos] = '-'
	}

	write(w, numBuf[pos:])
}

func signed(n int64) (uint64, bool) {
	if n < 0 {
		return uint64(-n), true
	}
	return uint64(n), false
}

func writeByte(w io.Writer, b byte) {
	oneByte[0] = b
	write(w, oneByte[:])
}

// write hides p from escape analysis. Passing p to an unknown io.Writer would
// otherwise flag it as escaping, which makes every Printf call allocate.
func write(w io.Writer, p []byte) {
	writeNoEscape(w, noEscape(unsafe.Pointer(&p)))
}

func writeNoEscape(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w != nil {
		w.Write(p)
	} else {
		earlyPrintBuffer.Write(p)
	}
}

// noEscape hides a pointer from escape analysis. It is copied over from
// runtime/stubs.go.
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
