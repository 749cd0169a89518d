package utils

import (
	"syscall"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// S2b views a string as a []byte **without** allocation.
// ⚠️ The result must never be written through.
//
//go:nosplit
//go:inline
func S2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

///////////////////////////////////////////////////////////////////////////////
// Decimal Formatters — No fmt, No strconv
///////////////////////////////////////////////////////////////////////////////

// Utoa renders an unsigned 64-bit value in decimal. Digits are assembled
// in a stack buffer; the single allocation is the returned string itself.
// Wide enough for 20! and every value the counter can legally hold.
//
//go:nosplit
//go:inline
func Utoa(v uint64) string {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return string(buf[i:])
}

// Itoa renders a signed integer in decimal via Utoa.
//
//go:nosplit
//go:inline
func Itoa(v int) string {
	if v < 0 {
		return "-" + Utoa(uint64(-v))
	}
	return Utoa(uint64(v))
}

// Ftoa2 renders a non-negative float with exactly two decimal places,
// rounding half up. Used for throughput figures (e.g. "16.23"); negative
// inputs clamp to zero since no print path can legally produce one.
//
//go:nosplit
//go:inline
func Ftoa2(v float64) string {
	if v < 0 {
		v = 0
	}
	scaled := uint64(v*100 + 0.5)
	whole := Utoa(scaled / 100)
	frac := scaled % 100
	return whole + "." + string([]byte{byte('0' + frac/10), byte('0' + frac%10)})
}

///////////////////////////////////////////////////////////////////////////////
// Direct FD Writers — Bypass fmt and Buffered IO
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes a message straight to stderr (fd 2). No formatting,
// no buffering, no allocation beyond the caller's string.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	_, _ = syscall.Write(2, S2b(msg))
}

// PrintLine writes a message straight to stdout (fd 1). Result rendering
// only; never called inside the generation loop.
//
//go:nosplit
//go:inline
func PrintLine(msg string) {
	_, _ = syscall.Write(1, S2b(msg))
}
