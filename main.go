// ════════════════════════════════════════════════════════════════════════════════════════════════
// Circle Permutation Engine - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Single-Core Exhaustive Permutation Generator
// Component: CLI Wrapper & Run Orchestration
//
// Description:
//   Command wrapper around the circle engine with phased run setup and clean
//   separation of concerns. Pinning, timing, reporting and persistence all
//   live out here; the engine itself only counts.
//
// Run phases:
//   - Phase 1: Thread lock + optional CPU pinning for measurement stability
//   - Phase 2: Memory consolidation and GC shutdown before the timed loop
//   - Phase 3: Timed generation to natural completion
//   - Phase 4: GC restore, report rendering, optional history persistence
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"
	"runtime"
	rtdebug "runtime/debug"
	"time"

	"main/affinity"
	"main/circle"
	"main/debug"
	"main/fingerprint"
	"main/report"
	"main/store"
	"main/utils"

	"github.com/spf13/cobra"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// COMMAND TREE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runOptions holds the flags of the run command.
type runOptions struct {
	elements int    // Element count N
	core     int    // Pin target, -1 disables pinning
	verify   bool   // Digest-emitting run instead of the bare counting loop
	jsonOut  bool   // Machine-readable report
	dbPath   string // History database, empty disables persistence
}

// historyOptions holds the flags of the history command.
type historyOptions struct {
	dbPath  string
	limit   int
	jsonOut bool
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circleperm",
		Short: "Exhaustive single-core permutation generation with the circle algorithm",
		Long: "circleperm enumerates all N! permutations of {0,…,N-1} without recursion,\n" +
			"omission or duplication, and reports the sustained generation throughput.",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newHistoryCommand())
	return cmd
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate all N! permutations and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.elements, "elements", "n", 11, "element count (3-20)")
	cmd.Flags().IntVar(&opts.core, "core", -1, "CPU core to pin the run to (-1 = no pinning)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "emit every permutation into a stream digest")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "record the run into this history database")
	return cmd
}

func newHistoryCommand() *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeHistory(opts)
		},
	}

	cmd.Flags().StringVar(&opts.dbPath, "db", "circleperm.db", "history database to read")
	cmd.Flags().IntVar(&opts.limit, "limit", 10, "maximum runs to list")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print history as JSON")
	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RUN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// executeRun drives one measured generation run through its phases.
func executeRun(opts *runOptions) error {
	engine, err := circle.New(opts.elements)
	if err != nil {
		return err
	}
	debug.DropMessage("INIT", "N="+utils.Itoa(opts.elements)+", exhaustive N! coverage")

	// PHASE 1: Scheduling stability. A failed pin degrades measurement
	// quality, never correctness, so it only warns.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if opts.core >= 0 {
		if affinity.Pin(opts.core) {
			debug.DropMessage("PIN", "core "+utils.Itoa(opts.core))
		} else {
			debug.DropMessage("PIN", "could not pin core "+utils.Itoa(opts.core)+", continuing unpinned")
			opts.core = -1
		}
	}

	// PHASE 2: Memory consolidation, then GC off for the timed loop.
	runtime.GC()
	runtime.GC() // Double GC to ensure thorough cleanup
	rtdebug.FreeOSMemory()
	prevGC := rtdebug.SetGCPercent(-1)

	// PHASE 3: Timed generation to natural completion. Verify mode keeps
	// the digest absorption inside the timed region: the figure it reports
	// is honest enumeration throughput, not counting throughput.
	var (
		digest  string
		total   uint64
		started = time.Now()
	)
	if opts.verify {
		stream := fingerprint.NewStream()
		total = engine.RunEmit(stream.Absorb)
		digest = stream.Sum()
	} else {
		total = engine.Run()
	}
	elapsed := time.Since(started)

	// PHASE 4: Restore the runtime and report.
	rtdebug.SetGCPercent(prevGC)

	rep := report.Build(opts.elements, total, elapsed, opts.core, digest, started)
	if err := printReport(rep, opts.jsonOut); err != nil {
		return err
	}

	if opts.dbPath != "" {
		if err := persistRun(opts.dbPath, rep); err != nil {
			debug.DropError("STORE", err) // history is best-effort, the run already succeeded
		} else {
			debug.DropMessage("STORE", "recorded into "+opts.dbPath)
		}
	}
	return nil
}

func printReport(rep report.Run, jsonOut bool) error {
	if !jsonOut {
		utils.PrintLine(rep.Text())
		return nil
	}
	data, err := rep.JSON()
	if err != nil {
		return err
	}
	utils.PrintLine(string(data) + "\n")
	return nil
}

func persistRun(path string, rep report.Run) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Insert(rep)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HISTORY LISTING
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func executeHistory(opts *historyOptions) error {
	s, err := store.Open(opts.dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.Recent(opts.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		debug.DropMessage("HISTORY", "no recorded runs in "+opts.dbPath)
		return nil
	}

	if opts.jsonOut {
		for _, r := range runs {
			data, err := r.JSON()
			if err != nil {
				return err
			}
			utils.PrintLine(string(data) + "\n")
		}
		return nil
	}

	for _, r := range runs {
		line := time.Unix(r.StartedAt, 0).UTC().Format(time.RFC3339) +
			"  N=" + utils.Itoa(r.N) +
			"  total=" + utils.Utoa(r.Total) +
			"  speed=" + utils.Ftoa2(r.PermsPerSec/1e9) + " Gperms/s"
		if r.Core >= 0 {
			line += "  core=" + utils.Itoa(r.Core)
		}
		if r.Digest != "" {
			line += "  digest=" + r.Digest[:8]
		}
		utils.PrintLine(line + "\n")
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		debug.DropError("FATAL", err)
		os.Exit(1)
	}
}
