package requests

type Job struct {
	ProcessID   int64 `json:"process_id"`
	BurstTime   int64 `json:"burst_time"`
	ArrivalTime int64 `json:"arrival_time"`
	Priority    int64 `json:"priority"`
}
type ScheduleRequest struct {
	Jobs []Job `json:"jobs"`
}
