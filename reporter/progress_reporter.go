package reporter

import (
	"sync/atomic"
	"time"

	director "github.com/relistan/go-director"
	log "github.com/sirupsen/logrus"
)

// A ProgressReporter accumulates record and byte counts from the generation
// loop and logs a progress line on a fixed interval. The counters are
// atomic so reporting never blocks emission.
type ProgressReporter struct {
	ReportLooper director.Looper

	recordCount uint64
	byteCount   uint64
	startedAt   time.Time
}

// NewProgressReporter returns a properly configured reporter
func NewProgressReporter(interval time.Duration) *ProgressReporter {
	return &ProgressReporter{
		ReportLooper: director.NewTimedLooper(director.FOREVER, interval, make(chan error)),
	}
}

// Observe atomically adds one batch of emitted records to the counters
func (r *ProgressReporter) Observe(records uint64, bytes uint64) {
	atomic.AddUint64(&r.recordCount, records)
	atomic.AddUint64(&r.byteCount, bytes)
}

// Records returns the emitted-record count so far
func (r *ProgressReporter) Records() uint64 {
	return atomic.LoadUint64(&r.recordCount)
}

// Bytes returns the accounted byte count so far
func (r *ProgressReporter) Bytes() uint64 {
	return atomic.LoadUint64(&r.byteCount)
}

// Run starts up a background goroutine that reports progress on the
// configured interval
func (r *ProgressReporter) Run() {
	r.startedAt = time.Now()

	go r.ReportLooper.Loop(func() error {
		records := atomic.LoadUint64(&r.recordCount)
		bytes := atomic.LoadUint64(&r.byteCount)

		elapsed := time.Since(r.startedAt).Seconds()
		if elapsed <= 0 {
			return nil
		}

		log.Infof("Progress: %d records, %d bytes (%.0f records/sec)",
			records, bytes, float64(records)/elapsed)

		return nil
	})
}

// Stop shuts the reporting loop down
func (r *ProgressReporter) Stop() {
	r.ReportLooper.Quit()
}
