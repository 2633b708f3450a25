package scheduler

import (
	"container/list"
	"sort"
)

// RoundRobin runs round robin scheduling over a FIFO ready queue with the
// given time quantum. A process joins the queue the moment the clock
// reaches its arrival time; processes arriving while a slice runs enter
// the queue before the preempted process is re-enqueued. When the queue
// drains with work still pending, the clock jumps to the next arrival.
// Waiting time is finish minus burst minus arrival, clamped at zero.
//
// Preconditions: len(processes) >= 1, quantum >= 1.
func RoundRobin(processes []Process, quantum int64) []TimeSlice {
	n := len(processes)
	remaining := make([]int64, n)
	for i := range processes {
		remaining[i] = processes[i].BurstTime
	}

	// Admission order: ascending arrival time, original position on ties.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].ArrivalTime < processes[order[j]].ArrivalTime
	})

	var (
		currentTime int64
		completed   int
		nextArrival int
		queued      = make([]bool, n)
		queue       = list.New()
		gantt       = make([]TimeSlice, 0, n)
	)

	admit := func() {
		for nextArrival < n && processes[order[nextArrival]].ArrivalTime <= currentTime {
			idx := order[nextArrival]
			if !queued[idx] && remaining[idx] > 0 {
				queue.PushBack(idx)
				queued[idx] = true
			}
			nextArrival++
		}
	}

	admit()

	for completed < n {
		if queue.Len() == 0 {
			// All queued work is done; jump to the next arrival.
			currentTime = processes[order[nextArrival]].ArrivalTime
			admit()
			continue
		}

		idx := queue.Remove(queue.Front()).(int)

		run := remaining[idx]
		if run > quantum {
			run = quantum
		}
		start := currentTime
		currentTime += run
		remaining[idx] -= run

		gantt = append(gantt, TimeSlice{
			PID:   processes[idx].PID,
			Start: start,
			Stop:  currentTime,
		})

		// Arrivals during this slice take queue precedence over the
		// preempted process.
		admit()

		if remaining[idx] == 0 {
			completed++
			processes[idx].CompletionTime = currentTime

			waitingTime := currentTime - processes[idx].BurstTime - processes[idx].ArrivalTime
			if waitingTime < 0 {
				waitingTime = 0
			}
			processes[idx].WaitingTime = waitingTime
		} else {
			queue.PushBack(idx)
		}
	}
	return gantt
}
