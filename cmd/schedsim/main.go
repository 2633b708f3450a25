// Command schedsim reads a batch of process records and prints the
// schedule each of the four disciplines would produce, with per-process
// waiting and turnaround times and their averages.
//
// Usage: schedsim [input-file]
//
// Records are CSV rows of pid,burst,arrival[,priority], read from the
// named file or from stdin when no file is given.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"schedsim/config"
	"schedsim/internal/loader"
	"schedsim/internal/report"
	"schedsim/internal/scheduler"
)

func main() {
	input, closeInput, err := openInput(os.Args...)
	if err != nil {
		log.Fatal(err)
	}
	defer closeInput()

	processes, err := loader.Load(input)
	if err != nil {
		log.Fatal(err)
	}

	quantum := config.Get().RoundRobinTimeQuantum

	runSchedule(os.Stdout, "First-come, first-serve", processes, scheduler.FCFS)

	runSchedule(os.Stdout, "Priority", processes, scheduler.Priority)

	runSchedule(os.Stdout, "Shortest-job-first (preemptive)", processes, scheduler.SRTF)

	runSchedule(os.Stdout, fmt.Sprintf("Round-robin, quantum = %d", quantum), processes,
		func(ps []scheduler.Process) []scheduler.TimeSlice {
			return scheduler.RoundRobin(ps, quantum)
		})
}

// runSchedule executes one engine over its own clone of the workload and
// renders its section.
func runSchedule(w io.Writer, title string, processes []scheduler.Process, engine func([]scheduler.Process) []scheduler.TimeSlice) {
	ps := scheduler.Clone(processes)
	gantt := engine(ps)
	scheduler.ApplyTurnaround(ps)
	report.Render(w, title, ps, gantt)
}

func openInput(args ...string) (io.Reader, func(), error) {
	if len(args) < 2 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}
