package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRTF_FinishesInAscendingBurstOrder(t *testing.T) {
	ps := []Process{
		{PID: 1, BurstTime: 7},
		{PID: 2, BurstTime: 4},
		{PID: 3, BurstTime: 1},
	}

	SRTF(ps)
	ApplyTurnaround(ps)

	assert.EqualValues(t, 5, ps[0].WaitingTime)
	assert.EqualValues(t, 1, ps[1].WaitingTime)
	assert.EqualValues(t, 0, ps[2].WaitingTime)
	assert.EqualValues(t, 12, ps[0].CompletionTime)
	assert.EqualValues(t, 5, ps[1].CompletionTime)
	assert.EqualValues(t, 1, ps[2].CompletionTime)
	assert.EqualValues(t, 12, ps[0].TurnaroundTime)
}

func TestSRTF_PreemptsOnShorterArrival(t *testing.T) {
	ps := []Process{
		{PID: 1, BurstTime: 8},
		{PID: 2, BurstTime: 4, ArrivalTime: 1},
	}

	gantt := SRTF(ps)

	// P1 runs one unit, P2 arrives with less remaining work and runs to
	// completion, then P1 resumes.
	require.Len(t, gantt, 3)
	assert.Equal(t, TimeSlice{PID: 1, Start: 0, Stop: 1}, gantt[0])
	assert.Equal(t, TimeSlice{PID: 2, Start: 1, Stop: 5}, gantt[1])
	assert.Equal(t, TimeSlice{PID: 1, Start: 5, Stop: 12}, gantt[2])

	assert.EqualValues(t, 4, ps[0].WaitingTime)
	assert.EqualValues(t, 0, ps[1].WaitingTime)
}

func TestSRTF_JumpsOverIdleTime(t *testing.T) {
	ps := []Process{{PID: 1, BurstTime: 2, ArrivalTime: 3}}

	gantt := SRTF(ps)

	assert.EqualValues(t, 0, ps[0].WaitingTime)
	assert.EqualValues(t, 5, ps[0].CompletionTime)
	require.Len(t, gantt, 1)
	assert.Equal(t, TimeSlice{PID: 1, Start: 3, Stop: 5}, gantt[0])
}

func TestSRTF_IdleGapBetweenBatches(t *testing.T) {
	ps := []Process{
		{PID: 1, BurstTime: 2},
		{PID: 2, BurstTime: 3, ArrivalTime: 10},
	}

	gantt := SRTF(ps)

	assert.EqualValues(t, 2, ps[0].CompletionTime)
	assert.EqualValues(t, 13, ps[1].CompletionTime)
	assert.EqualValues(t, 0, ps[1].WaitingTime)
	require.Len(t, gantt, 2)
	assert.Equal(t, TimeSlice{PID: 2, Start: 10, Stop: 13}, gantt[1])
}

func TestSRTF_EqualRemainingPrefersListOrder(t *testing.T) {
	ps := []Process{
		{PID: 1, BurstTime: 3},
		{PID: 2, BurstTime: 3},
	}

	gantt := SRTF(ps)

	// Strictly-smaller comparison means the first process runs to
	// completion before the tie ever flips.
	require.Len(t, gantt, 2)
	assert.Equal(t, TimeSlice{PID: 1, Start: 0, Stop: 3}, gantt[0])
	assert.Equal(t, TimeSlice{PID: 2, Start: 3, Stop: 6}, gantt[1])
	assert.EqualValues(t, 0, ps[0].WaitingTime)
	assert.EqualValues(t, 3, ps[1].WaitingTime)
}
