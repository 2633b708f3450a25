// Package scheduler implements four classical CPU scheduling disciplines
// over a static batch of processes: first-come-first-serve, non-preemptive
// priority, preemptive shortest-job-first (SRTF) and round robin.
//
// Each engine mutates the slice it is given, filling in waiting and
// completion times, and returns the execution slices for a Gantt chart.
// Callers that run more than one engine over the same workload must hand
// each engine its own Clone of the original slice.
package scheduler

type (
	Process struct {
		PID            int64
		ArrivalTime    int64
		BurstTime      int64
		Priority       int64
		WaitingTime    int64
		TurnaroundTime int64
		CompletionTime int64
	}
	TimeSlice struct {
		PID   int64
		Start int64
		Stop  int64
	}
)

// Clone returns an independent copy of processes. Engines reorder and
// mutate their input, so every engine run gets its own clone.
func Clone(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}
