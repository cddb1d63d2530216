package ecs

import (
	"context"
	"reflect"
	"time"

	"github.com/rs/zerolog"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes registered systems sequentially, in registration order,
// against a shared World. It is an ordinary driver loop: no dependency
// analysis, no parallelism between systems. Systems that want internal
// concurrency are free to spin up their own goroutines, which is why the
// World's structures all carry their own locks.
type Scheduler struct {
	world       *World
	log         zerolog.Logger
	systems     []System
	systemLogs  []zerolog.Logger
	systemStats []*systemStatsInternal
}

// NewScheduler creates a scheduler driving the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:   world,
		log:     world.Logger().With().Str("subsystem", "scheduler").Logger(),
		systems: make([]System, 0),
	}
}

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	systemName := systemType.Name()

	s.systems = append(s.systems, system)
	s.systemLogs = append(s.systemLogs, s.log.With().Str("system", systemName).Logger())
	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemName,
		minDuration: time.Duration(1<<63 - 1),
	})
	s.log.Debug().Str("system", systemName).Int("order", len(s.systems)).Msg("system registered")
}

// Once executes all registered systems once with the given delta time, then
// flushes the frame's command buffer.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.world)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		s.systemLogs[i].Trace().Dur("duration", duration).Msg("system executed")
	}

	frame.Commands.Flush(s.world)
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug().Msg("scheduler stopped")
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
