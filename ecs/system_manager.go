package ecs

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// SystemManagerStats provides statistics about system execution.
type SystemManagerStats struct {
	SystemCount     int
	FrameCount      int64
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

// SystemManager owns a fixed, ordered list of systems and drives the frame.
// Order is part of the contract: input before motion, motion before physics,
// physics before render.
type SystemManager struct {
	log         *zap.Logger
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
}

// NewSystemManager creates a manager over systems in the given order.
// A nil logger disables logging.
func NewSystemManager(log *zap.Logger, systems ...System) *SystemManager {
	if log == nil {
		log = zap.NewNop()
	}

	m := &SystemManager{
		log:         log,
		systems:     make([]System, 0, len(systems)),
		systemStats: make([]*systemStatsInternal, 0, len(systems)),
	}

	for _, system := range systems {
		m.systems = append(m.systems, system)
		m.systemStats = append(m.systemStats, &systemStatsInternal{
			name:        systemName(system),
			minDuration: time.Duration(1<<63 - 1),
		})
	}

	return m
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// Systems returns the managed systems in update order.
func (m *SystemManager) Systems() []System {
	return m.systems
}

// Update runs every system once with the given delta, in order.
// The first failing system aborts the frame; its error is wrapped with the
// system name.
func (m *SystemManager) Update(delta float64) error {
	m.frames++

	for i, system := range m.systems {
		stats := m.systemStats[i]

		start := time.Now()
		err := system.Update(delta)
		duration := time.Since(start)

		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			m.log.Error("system update failed",
				zap.String("system", stats.name),
				zap.Int64("frame", m.frames),
				zap.Error(err))
			return fmt.Errorf("%s: %w", stats.name, err)
		}
	}

	return nil
}

// Run updates all systems at the given interval until the context is
// cancelled or an update fails. Cancellation is not an error.
func (m *SystemManager) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := m.Update(dt); err != nil {
				return err
			}
		}
	}
}

// Stats returns statistics about system execution.
func (m *SystemManager) Stats() *SystemManagerStats {
	stats := &SystemManagerStats{
		SystemCount: len(m.systems),
		FrameCount:  m.frames,
		Systems:     make([]SystemStats, len(m.systemStats)),
	}

	var totalExecs int64
	for i, internal := range m.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
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
