package api

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/scheduler"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts every scheduling endpoint under /api/v1.
func (s *SchedulerHandlerImpl) Register(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", s.FirstComeFirstServe)
	v1.Post("/priority", s.Priority)
	v1.Post("/sjf", s.ShortestJobFirst)
	v1.Post("/rr", s.RoundRobin)
	v1.Post("/all", s.AllAlgorithms)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	processes, ok := parseJobs(ctx)
	if !ok {
		return nil
	}
	return ctx.JSON(run("fcfs", processes, scheduler.FCFS))
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	processes, ok := parseJobs(ctx)
	if !ok {
		return nil
	}
	return ctx.JSON(run("priority", processes, scheduler.Priority))
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	processes, ok := parseJobs(ctx)
	if !ok {
		return nil
	}
	return ctx.JSON(run("sjf", processes, scheduler.SRTF))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	processes, ok := parseJobs(ctx)
	if !ok {
		return nil
	}
	quantum, err := s.quantum(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(run("rr", processes, func(ps []scheduler.Process) []scheduler.TimeSlice {
		return scheduler.RoundRobin(ps, quantum)
	}))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, ok := parseJobs(ctx)
	if !ok {
		return nil
	}
	quantum, err := s.quantum(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON([]responses.ScheduleResponse{
		run("fcfs", processes, scheduler.FCFS),
		run("priority", processes, scheduler.Priority),
		run("sjf", processes, scheduler.SRTF),
		run("rr", processes, func(ps []scheduler.Process) []scheduler.TimeSlice {
			return scheduler.RoundRobin(ps, quantum)
		}),
	})
}

// quantum returns the configured round robin quantum, overridable per
// request with ?quantum=.
func (s *SchedulerHandlerImpl) quantum(ctx *fiber.Ctx) (int64, error) {
	raw := ctx.Query("quantum")
	if raw == "" {
		return s.config.RoundRobinTimeQuantum, nil
	}
	q, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || q < 1 {
		return 0, fmt.Errorf("quantum must be a positive integer, got %q", raw)
	}
	return q, nil
}

func parseJobs(ctx *fiber.Ctx) ([]scheduler.Process, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
		return nil, false
	}
	if len(request.Jobs) == 0 {
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no processes to schedule"})
		return nil, false
	}

	processes := make([]scheduler.Process, len(request.Jobs))
	for i, job := range request.Jobs {
		if job.BurstTime <= 0 {
			_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("process %d: burst time must be positive", job.ProcessID),
			})
			return nil, false
		}
		if job.ArrivalTime < 0 {
			_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("process %d: arrival time must not be negative", job.ProcessID),
			})
			return nil, false
		}
		processes[i] = scheduler.Process{
			PID:         job.ProcessID,
			BurstTime:   job.BurstTime,
			ArrivalTime: job.ArrivalTime,
			Priority:    job.Priority,
		}
	}
	return processes, true
}

// run executes one engine over its own clone of the workload and collects
// the per-process metrics.
func run(algorithm string, processes []scheduler.Process, engine func([]scheduler.Process) []scheduler.TimeSlice) responses.ScheduleResponse {
	ps := scheduler.Clone(processes)
	engine(ps)
	scheduler.ApplyTurnaround(ps)

	details := make([]responses.ProcessResponse, len(ps))
	for i := range ps {
		details[i] = responses.ProcessResponse{
			ProcessID:      ps[i].PID,
			BurstTime:      ps[i].BurstTime,
			ArrivalTime:    ps[i].ArrivalTime,
			WaitingTime:    ps[i].WaitingTime,
			TurnaroundTime: ps[i].TurnaroundTime,
			CompletionTime: ps[i].CompletionTime,
		}
	}

	avgWait, avgTurnaround := scheduler.Averages(ps)
	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		AverageWaitingTime:    avgWait,
		AverageTurnaroundTime: avgTurnaround,
		Details:               details,
	}
}
