// Package loader parses process records from CSV input. Each row is
// pid,burst,arrival with an optional fourth priority field; priority
// defaults to 0 when absent.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"schedsim/internal/scheduler"
)

var ErrNoProcesses = errors.New("no processes to schedule")

// Load reads every record from r and returns the validated process list.
// It fails on malformed rows, non-positive burst times and negative
// arrival times, and returns ErrNoProcesses when r holds no records.
func Load(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // priority column is optional
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoProcesses
	}

	processes := make([]scheduler.Process, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("record %d: need pid, burst and arrival fields, got %d", i+1, len(row))
		}
		if processes[i].PID, err = parseField(row[0], i, "pid"); err != nil {
			return nil, err
		}
		if processes[i].BurstTime, err = parseField(row[1], i, "burst time"); err != nil {
			return nil, err
		}
		if processes[i].ArrivalTime, err = parseField(row[2], i, "arrival time"); err != nil {
			return nil, err
		}
		if len(row) >= 4 {
			if processes[i].Priority, err = parseField(row[3], i, "priority"); err != nil {
				return nil, err
			}
		}

		if processes[i].BurstTime <= 0 {
			return nil, fmt.Errorf("record %d: burst time must be positive, got %d", i+1, processes[i].BurstTime)
		}
		if processes[i].ArrivalTime < 0 {
			return nil, fmt.Errorf("record %d: arrival time must not be negative, got %d", i+1, processes[i].ArrivalTime)
		}
	}

	return processes, nil
}

func parseField(s string, record int, name string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("record %d: parsing %s: %w", record+1, name, err)
	}
	return v, nil
}
