package journal

import (
	"log/slog"
	"sync/atomic"
)

type miss struct {
	phrase  string
	locale  string
	outcome string
}

// Recorder feeds misses to a DB from a single writer goroutine behind a
// bounded channel. Record never blocks: when the buffer is full the miss
// is dropped and counted. The parse path stays free of SQLite I/O.
type Recorder struct {
	db      *DB
	logger  *slog.Logger
	ch      chan miss
	done    chan struct{}
	closed  atomic.Bool
	dropped atomic.Int64
}

// NewRecorder starts the writer goroutine. A buffer of 0 or less falls back
// to 256 pending records.
func NewRecorder(db *DB, buffer int, logger *slog.Logger) *Recorder {
	if buffer <= 0 {
		buffer = 256
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		db:     db,
		logger: logger,
		ch:     make(chan miss, buffer),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Recorder) run() {
	defer close(r.done)
	for m := range r.ch {
		if err := r.db.Record(m.phrase, m.locale, m.outcome); err != nil {
			r.logger.Error("journal write failed", "phrase", m.phrase, "error", err)
		}
	}
}

// Record enqueues one miss. It returns immediately; a full buffer or a
// closed recorder drops the record.
func (r *Recorder) Record(phrase, locale, outcome string) {
	if r.closed.Load() {
		return
	}
	select {
	case r.ch <- miss{phrase: phrase, locale: locale, outcome: outcome}:
	default:
		r.dropped.Add(1)
	}
}

// Dropped returns the number of records lost to backpressure.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close flushes pending records and stops the writer goroutine.
func (r *Recorder) Close() {
	if r.closed.Swap(true) {
		return
	}
	close(r.ch)
	<-r.done
	if n := r.dropped.Load(); n > 0 {
		r.logger.Warn("journal dropped records under backpressure", "count", n)
	}
}
