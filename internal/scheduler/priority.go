package scheduler

import "sort"

// Priority runs non-preemptive priority scheduling: the whole list is
// sorted once by descending priority value (larger value runs first) and
// the FCFS pass computes the timings over that order. Arrival time affects
// timing only through the FCFS arrival clamp; it never changes the service
// order. The order among equal priorities is unspecified.
//
// Precondition: len(processes) >= 1.
func Priority(processes []Process) []TimeSlice {
	sort.Slice(processes, func(i, j int) bool {
		return processes[i].Priority > processes[j].Priority
	})
	return FCFS(processes)
}
