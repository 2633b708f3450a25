package scheduler

import "math"

// SRTF runs preemptive shortest-job-first (shortest remaining time first).
// Time advances one unit at a time; each unit goes to the arrived process
// with the smallest positive remaining burst, the first such process in
// list order winning ties. When no process has arrived the clock jumps
// straight to the next arrival. A process's waiting time is its finish
// time minus burst minus arrival, clamped at zero.
//
// Precondition: len(processes) >= 1.
func SRTF(processes []Process) []TimeSlice {
	n := len(processes)
	remaining := make([]int64, n)
	for i := range processes {
		remaining[i] = processes[i].BurstTime
	}

	var (
		currentTime int64
		completed   int
		gantt       = make([]TimeSlice, 0, n)
		running     = -1
		sliceStart  int64
	)

	for completed < n {
		shortest := -1
		minRemaining := int64(math.MaxInt64)
		for i := range processes {
			if processes[i].ArrivalTime <= currentTime && remaining[i] > 0 && remaining[i] < minRemaining {
				minRemaining = remaining[i]
				shortest = i
			}
		}

		if shortest == -1 {
			if running != -1 {
				gantt = append(gantt, TimeSlice{
					PID:   processes[running].PID,
					Start: sliceStart,
					Stop:  currentTime,
				})
				running = -1
			}
			// CPU is idle; skip ahead to the next arrival.
			next := int64(math.MaxInt64)
			for i := range processes {
				if remaining[i] > 0 && processes[i].ArrivalTime < next {
					next = processes[i].ArrivalTime
				}
			}
			currentTime = next
			continue
		}

		if shortest != running {
			if running != -1 {
				gantt = append(gantt, TimeSlice{
					PID:   processes[running].PID,
					Start: sliceStart,
					Stop:  currentTime,
				})
			}
			running = shortest
			sliceStart = currentTime
		}

		remaining[shortest]--
		currentTime++

		if remaining[shortest] == 0 {
			completed++
			processes[shortest].CompletionTime = currentTime

			waitingTime := currentTime - processes[shortest].BurstTime - processes[shortest].ArrivalTime
			if waitingTime < 0 {
				waitingTime = 0
			}
			processes[shortest].WaitingTime = waitingTime
		}
	}

	gantt = append(gantt, TimeSlice{
		PID:   processes[running].PID,
		Start: sliceStart,
		Stop:  currentTime,
	})
	return gantt
}
