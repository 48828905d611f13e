package logging

import (
	"time"
)

// PerformanceMonitor tracks the wall-clock cost of named operations
// (catalog load, distance matrix build, a full solve run) and logs
// slow ones.
type PerformanceMonitor struct {
	logger *Logger
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor(logger *Logger) *PerformanceMonitor {
	return &PerformanceMonitor{
		logger: logger,
	}
}

// TrackOperation tracks an operation's performance
func (pm *PerformanceMonitor) TrackOperation(name string, operation func() error) error {
	start := time.Now()
	err := operation()
	duration := time.Since(start)

	fields := map[string]interface{}{
		"operation":   name,
		"duration_ms": duration.Milliseconds(),
	}

	if err != nil {
		fields["error"] = err
		pm.logger.WithFields(fields).Error("operation failed")
		return err
	}

	if duration > 500*time.Millisecond {
		pm.logger.WithFields(fields).Warn("slow operation detected")
	} else {
		pm.logger.WithFields(fields).Debug("operation completed")
	}

	return nil
}

// TrackOperationWithResult tracks an operation and returns its result.
func (pm *PerformanceMonitor) TrackOperationWithResult(name string, operation func() (interface{}, error)) (interface{}, error) {
	start := time.Now()
	result, err := operation()
	duration := time.Since(start)

	fields := map[string]interface{}{
		"operation":   name,
		"duration_ms": duration.Milliseconds(),
	}

	if err != nil {
		fields["error"] = err
		pm.logger.WithFields(fields).Error("operation failed")
		return nil, err
	}

	if duration > 500*time.Millisecond {
		pm.logger.WithFields(fields).Warn("slow operation detected")
	} else {
		pm.logger.WithFields(fields).Debug("operation completed")
	}

	return result, nil
}

// LogGoroutineCount logs the current goroutine count, useful while tuning
// how many concurrent solver instances a process can host.
func (pm *PerformanceMonitor) LogGoroutineCount(count int) {
	if count > 1000 {
		pm.logger.Warn("high goroutine count", "count", count, "threshold", 1000)
	} else {
		pm.logger.Debug("goroutine count", "count", count)
	}
}
