// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves the --threads value: 0 (or below) means one
// worker per CPU.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// BufSize sizes the writer channel for a given worker count.
func BufSize(threads int) int {
	return max(16, threads*4)
}

// ThreadWarnings reports flag combinations that are accepted but ignored.
//   - lookup walks single values on the calling goroutine, so threads > 1
//     has no effect there.
//   - more workers than seed intervals leaves the extra workers idle on the
//     first hop; the pool still helps once later hops split the set.
func ThreadWarnings(threads int, lookup bool, inputs int) []string {
	var warns []string
	if lookup && threads > 1 {
		warns = append(warns, "--threads is ignored by lookup")
	}
	if !lookup && threads > 1 && inputs > 0 && inputs < threads {
		warns = append(warns, "more threads than seed intervals")
	}
	return warns
}
