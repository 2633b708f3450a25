// Package report renders the per-algorithm schedule output: a title
// banner, a Gantt strip of the execution order and a table of per-process
// timings with averages in the footer.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/scheduler"
)

// Render writes one algorithm's full section. The processes must already
// carry waiting, turnaround and completion times.
func Render(w io.Writer, title string, processes []scheduler.Process, gantt []scheduler.TimeSlice) {
	writeTitle(w, title)
	writeGantt(w, gantt)

	avgWait, avgTurnaround := scheduler.Averages(processes)
	var throughput float64
	if last := scheduler.LastCompletion(processes); last > 0 {
		throughput = float64(len(processes)) / float64(last)
	}
	writeTable(w, processes, avgWait, avgTurnaround, throughput)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, gantt []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func writeTable(w io.Writer, processes []scheduler.Process, wait, turnaround, throughput float64) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(processes))
	for i := range processes {
		rows[i] = []string{
			fmt.Sprint(processes[i].PID),
			fmt.Sprint(processes[i].Priority),
			fmt.Sprint(processes[i].BurstTime),
			fmt.Sprint(processes[i].ArrivalTime),
			fmt.Sprint(processes[i].WaitingTime),
			fmt.Sprint(processes[i].TurnaroundTime),
			fmt.Sprint(processes[i].CompletionTime),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", wait),
		fmt.Sprintf("Average\n%.2f", turnaround),
		fmt.Sprintf("Throughput\n%.2f/t", throughput)})
	table.Render()
}
