package threading

import (
	"raycaster/internal/config"
	"raycaster/internal/threading/core"
	"raycaster/internal/threading/monitoring"
)

// ThreadingComponents holds the worker pool used for column projection and
// the performance monitor shared by the drivers
type ThreadingComponents struct {
	WorkerPool         *core.WorkerPool // nil when columns are projected serially
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates and starts the threading components
func NewThreadingComponents(cfg *config.Config) *ThreadingComponents {
	tc := &ThreadingComponents{
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
	if cfg.Graphics.ParallelColumns {
		tc.WorkerPool = core.NewWorkerPool(cfg.Graphics.Workers)
		tc.WorkerPool.Start()
	}
	return tc
}

// Shutdown stops the worker pool
func (tc *ThreadingComponents) Shutdown() {
	if tc.WorkerPool != nil {
		tc.WorkerPool.Stop()
	}
}

// GetPerformanceMetrics returns current performance metrics
func (tc *ThreadingComponents) GetPerformanceMetrics() monitoring.Metrics {
	return tc.PerformanceMonitor.GetCurrentMetrics()
}
