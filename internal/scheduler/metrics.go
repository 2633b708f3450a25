package scheduler

// ApplyTurnaround derives each process's turnaround time from its waiting
// time. Call it only after an engine has finalized the waiting times.
func ApplyTurnaround(processes []Process) {
	for i := range processes {
		processes[i].TurnaroundTime = processes[i].WaitingTime + processes[i].BurstTime
	}
}

// Averages returns the mean waiting time and mean turnaround time.
// Precondition: len(processes) >= 1.
func Averages(processes []Process) (avgWait, avgTurnaround float64) {
	var totalWait, totalTurnaround float64
	for i := range processes {
		totalWait += float64(processes[i].WaitingTime)
		totalTurnaround += float64(processes[i].TurnaroundTime)
	}
	count := float64(len(processes))
	return totalWait / count, totalTurnaround / count
}

// LastCompletion returns the latest completion time across processes.
func LastCompletion(processes []Process) int64 {
	var last int64
	for i := range processes {
		if processes[i].CompletionTime > last {
			last = processes[i].CompletionTime
		}
	}
	return last
}
