// affinity_stub.go - CPU pinning no-op for platforms without
// sched_setaffinity(2). Pinning is a benchmarking aid only; generation
// correctness never depends on it, so the fallback simply reports failure
// and lets the caller log a warning.

//go:build !linux || tinygo

package affinity

// Pin reports false on platforms without affinity support.
//
//go:nosplit
//go:inline
func Pin(cpu int) bool {
	return false
}
