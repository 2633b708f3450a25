package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCFS_SingleProcess(t *testing.T) {
	ps := []Process{{PID: 1, BurstTime: 5}}

	gantt := FCFS(ps)
	ApplyTurnaround(ps)

	assert.EqualValues(t, 0, ps[0].WaitingTime)
	assert.EqualValues(t, 5, ps[0].TurnaroundTime)
	assert.EqualValues(t, 5, ps[0].CompletionTime)
	require.Len(t, gantt, 1)
	assert.Equal(t, TimeSlice{PID: 1, Start: 0, Stop: 5}, gantt[0])
}

func TestFCFS_LaterArrivalWaitsForCPU(t *testing.T) {
	ps := []Process{
		{PID: 1, BurstTime: 5},
		{PID: 2, BurstTime: 3, ArrivalTime: 2},
	}

	FCFS(ps)
	ApplyTurnaround(ps)

	assert.EqualValues(t, 0, ps[0].WaitingTime)
	assert.EqualValues(t, 3, ps[1].WaitingTime)
	assert.EqualValues(t, 5, ps[0].TurnaroundTime)
	assert.EqualValues(t, 6, ps[1].TurnaroundTime)
}

func TestFCFS_IdlesUntilLateArrival(t *testing.T) {
	ps := []Process{
		{PID: 1, BurstTime: 2},
		{PID: 2, BurstTime: 1, ArrivalTime: 5},
	}

	gantt := FCFS(ps)

	assert.EqualValues(t, 0, ps[0].WaitingTime)
	assert.EqualValues(t, 0, ps[1].WaitingTime)
	assert.EqualValues(t, 2, ps[0].CompletionTime)
	assert.EqualValues(t, 6, ps[1].CompletionTime)
	require.Len(t, gantt, 2)
	assert.Equal(t, TimeSlice{PID: 2, Start: 5, Stop: 6}, gantt[1])
}

func TestFCFS_EqualArrivalsKeepListOrder(t *testing.T) {
	ps := []Process{
		{PID: 3, BurstTime: 2, ArrivalTime: 1},
		{PID: 1, BurstTime: 4, ArrivalTime: 1},
		{PID: 2, BurstTime: 1, ArrivalTime: 1},
	}

	gantt := FCFS(ps)

	require.Len(t, gantt, 3)
	assert.EqualValues(t, 3, gantt[0].PID)
	assert.EqualValues(t, 1, gantt[1].PID)
	assert.EqualValues(t, 2, gantt[2].PID)
	assert.EqualValues(t, 0, ps[0].WaitingTime)
	assert.EqualValues(t, 2, ps[1].WaitingTime)
	assert.EqualValues(t, 6, ps[2].WaitingTime)
}

func TestFCFS_StartsClockAtFirstArrival(t *testing.T) {
	ps := []Process{
		{PID: 1, BurstTime: 3, ArrivalTime: 4},
		{PID: 2, BurstTime: 2, ArrivalTime: 4},
	}

	FCFS(ps)

	assert.EqualValues(t, 0, ps[0].WaitingTime)
	assert.EqualValues(t, 3, ps[1].WaitingTime)
	assert.EqualValues(t, 7, ps[0].CompletionTime)
	assert.EqualValues(t, 9, ps[1].CompletionTime)
}
