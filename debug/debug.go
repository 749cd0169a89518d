// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path logging helper (zero-alloc)
//
// Purpose:
//   - Logs setup, teardown and failure paths without introducing heap
//     pressure near the generation loop.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Uses stackless logging model: no alloc, no interfaces.
//
// ⚠️ Never invoke inside the generation loop — cold paths only.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs error messages with an alloc-free print strategy.
// It writes directly to stderr (file descriptor 2), bypassing fmt.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		msg := prefix + ": " + err.Error() + "\n"
		utils.PrintWarning(msg)
	} else {
		msg := prefix + "\n"
		utils.PrintWarning(msg)
	}
}

// DropMessage logs tagged status messages for infrequent events:
// pinning results, phase transitions, store writes.
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	utils.PrintWarning(msg)
}

// DropCount logs a tagged unsigned counter value, the shape most run
// diagnostics take (totals, cycle counts, element counts).
//
//go:nosplit
//go:inline
//go:registerparams
func DropCount(prefix string, v uint64) {
	msg := prefix + ": " + utils.Utoa(v) + "\n"
	utils.PrintWarning(msg)
}
