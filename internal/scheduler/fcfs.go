package scheduler

// FCFS computes waiting and completion times for processes served strictly
// in list order, without preemption. The time cursor starts at the first
// process's arrival; each process begins at max(cursor, arrival), so the
// CPU idles through any gap before a late arrival. Processes sharing an
// arrival time run in list order.
//
// Precondition: len(processes) >= 1.
func FCFS(processes []Process) []TimeSlice {
	var (
		serviceTime = processes[0].ArrivalTime
		gantt       = make([]TimeSlice, 0, len(processes))
	)
	for i := range processes {
		if processes[i].ArrivalTime > serviceTime {
			serviceTime = processes[i].ArrivalTime
		}

		waitingTime := serviceTime - processes[i].ArrivalTime
		if waitingTime < 0 {
			waitingTime = 0
		}
		processes[i].WaitingTime = waitingTime

		start := serviceTime
		serviceTime += processes[i].BurstTime
		processes[i].CompletionTime = serviceTime

		gantt = append(gantt, TimeSlice{
			PID:   processes[i].PID,
			Start: start,
			Stop:  serviceTime,
		})
	}
	return gantt
}
