package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// smoothing is the weight of the newest sample in the running averages
const smoothing = 0.1

// PerformanceMonitor tracks frame and render-stage timings
type PerformanceMonitor struct {
	frameCount     atomic.Uint64
	frameTime      atomic.Int64 // nanoseconds, last frame
	projectionTime atomic.Int64 // nanoseconds, last column projection
	spriteTime     atomic.Int64 // nanoseconds, last sprite pass

	columnsCast    atomic.Int64
	spritesVisible atomic.Int64
	bumps          atomic.Uint64

	mutex             sync.RWMutex
	avgFrameTime      float64
	avgProjectionTime float64
	startTime         time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{startTime: time.Now()}
}

// Timer measures one stage; call End exactly once
type Timer struct {
	startTime time.Time
	done      func(time.Duration)
}

// End stops the timer and records the elapsed time
func (t *Timer) End() time.Duration {
	elapsed := time.Since(t.startTime)
	t.done(elapsed)
	return elapsed
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *Timer {
	return &Timer{startTime: time.Now(), done: pm.recordFrame}
}

// StartProjection begins timing the wall column pass
func (pm *PerformanceMonitor) StartProjection() *Timer {
	return &Timer{startTime: time.Now(), done: pm.recordProjection}
}

// StartSprites begins timing the sprite pass
func (pm *PerformanceMonitor) StartSprites() *Timer {
	return &Timer{startTime: time.Now(), done: func(d time.Duration) {
		pm.spriteTime.Store(d.Nanoseconds())
	}}
}

func (pm *PerformanceMonitor) recordFrame(d time.Duration) {
	pm.frameTime.Store(d.Nanoseconds())
	count := pm.frameCount.Add(1)

	pm.mutex.Lock()
	pm.avgFrameTime = average(pm.avgFrameTime, float64(d.Nanoseconds()), count)
	pm.mutex.Unlock()
}

func (pm *PerformanceMonitor) recordProjection(d time.Duration) {
	pm.projectionTime.Store(d.Nanoseconds())

	pm.mutex.Lock()
	pm.avgProjectionTime = average(pm.avgProjectionTime, float64(d.Nanoseconds()), pm.frameCount.Load()+1)
	pm.mutex.Unlock()
}

func average(avg, sample float64, count uint64) float64 {
	if count <= 1 || avg == 0 {
		return sample
	}
	return avg + (sample-avg)*smoothing
}

// RecordFrameContents stores what the last frame drew
func (pm *PerformanceMonitor) RecordFrameContents(columns, sprites int) {
	pm.columnsCast.Store(int64(columns))
	pm.spritesVisible.Store(int64(sprites))
}

// RecordBump counts a rejected movement
func (pm *PerformanceMonitor) RecordBump() {
	pm.bumps.Add(1)
}

// Metrics is a snapshot for the HUD and debug logs
type Metrics struct {
	Frames         uint64
	FramesPerSec   float64
	AvgFrameTime   time.Duration
	ProjectionTime time.Duration
	AvgProjection  time.Duration
	SpriteTime     time.Duration
	Columns        int
	Sprites        int
	Bumps          uint64
	MemoryUsageMB  uint64
	Uptime         time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() Metrics {
	pm.mutex.RLock()
	avgFrame := pm.avgFrameTime
	avgProjection := pm.avgProjectionTime
	start := pm.startTime
	pm.mutex.RUnlock()

	fps := 0.0
	if avgFrame > 0 {
		fps = float64(time.Second) / avgFrame
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return Metrics{
		Frames:         pm.frameCount.Load(),
		FramesPerSec:   fps,
		AvgFrameTime:   time.Duration(avgFrame),
		ProjectionTime: time.Duration(pm.projectionTime.Load()),
		AvgProjection:  time.Duration(avgProjection),
		SpriteTime:     time.Duration(pm.spriteTime.Load()),
		Columns:        int(pm.columnsCast.Load()),
		Sprites:        int(pm.spritesVisible.Load()),
		Bumps:          pm.bumps.Load(),
		MemoryUsageMB:  memStats.Alloc / 1024 / 1024,
		Uptime:         time.Since(start),
	}
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts reports a frame rate below minFPS
func (pm *PerformanceMonitor) CheckPerformanceAlerts(minFPS float64) []PerformanceAlert {
	var alerts []PerformanceAlert

	frameTime := pm.frameTime.Load()
	if frameTime > 0 {
		fps := float64(time.Second) / float64(frameTime)
		if fps < minFPS {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "frame rate is below target",
				Value:     fps,
				Threshold: minFPS,
			})
		}
	}

	return alerts
}
