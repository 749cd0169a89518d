// ============================================================================
// RUN REPORT RENDERING
// ============================================================================
//
// Captures one measured generation run and renders it for humans (fixed
// text block over the zero-alloc formatters) or machines (JSON via the
// sonnet codec). Reporting happens strictly after the timed run; nothing
// here is throughput-sensitive.

package report

import (
	"time"

	"main/utils"

	"github.com/sugawarayuuta/sonnet"
)

// Run is the complete record of one generation run.
type Run struct {
	N           int     `json:"n"`                // Element count
	Total       uint64  `json:"total"`            // Terminal permutation count, exactly N!
	ElapsedNs   int64   `json:"elapsed_ns"`       // Monotonic wall time of the timed loop
	PermsPerSec float64 `json:"perms_per_sec"`    // Total / elapsed seconds
	Core        int     `json:"core"`             // Pinned core, -1 when unpinned
	Digest      string  `json:"digest,omitempty"` // Stream fingerprint, verify mode only
	StartedAt   int64   `json:"started_at"`       // Unix seconds at run start
}

// Build assembles a Run from raw measurement values.
func Build(n int, total uint64, elapsed time.Duration, core int, digest string, startedAt time.Time) Run {
	r := Run{
		N:         n,
		Total:     total,
		ElapsedNs: elapsed.Nanoseconds(),
		Core:      core,
		Digest:    digest,
		StartedAt: startedAt.Unix(),
	}
	if secs := elapsed.Seconds(); secs > 0 {
		r.PermsPerSec = float64(total) / secs
	}
	return r
}

// JSON renders the run as a single JSON object.
func (r Run) JSON() ([]byte, error) {
	return sonnet.Marshal(r)
}

// Text renders the human-readable result block.
func (r Run) Text() string {
	s := "--- Performance Result ---\n" +
		"N:                  " + utils.Itoa(r.N) + "\n" +
		"Total Permutations: " + utils.Utoa(r.Total) + "\n" +
		"Time:               " + utils.Ftoa2(float64(r.ElapsedNs)/1e9) + " seconds\n" +
		"Speed:              " + utils.Ftoa2(r.PermsPerSec/1e9) + " Giga-perms/sec\n"
	if r.Digest != "" {
		s += "Digest:             " + r.Digest + "\n"
	}
	return s + "--------------------------\n"
}
