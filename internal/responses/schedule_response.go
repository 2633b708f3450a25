package responses

type ProcessResponse struct {
	ProcessID      int64 `json:"process_id"`
	BurstTime      int64 `json:"burst_time"`
	ArrivalTime    int64 `json:"arrival_time"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
	CompletionTime int64 `json:"completion_time"`
}
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnaroundTime float64           `json:"average_turnaround_time"`
	Details               []ProcessResponse `json:"details"`
}
