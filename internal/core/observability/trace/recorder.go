package trace

import (
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/zeusync/interactionsdk/internal/core/events/bus"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
)

var _ bus.EventBusObserver = (*Recorder)(nil)

// Stats counts what a Recorder saw.
type Stats struct {
	Records       uint64
	EncodeErrors  uint64
	HandlerErrors uint64
}

// Recorder is a bus observer writing every published event as a Record.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	session string
	encoder *cbor.Encoder
	closer  io.Closer
	logger  log.Log
	seq     uint64
	stats   Stats
	closed  bool
}

// NewRecorder writes records to w under a fresh session id.
func NewRecorder(w io.Writer, logger log.Log) *Recorder {
	if logger == nil {
		logger = log.NewNop()
	}
	r := &Recorder{
		session: uuid.NewString(),
		encoder: newEncoder(w),
		logger:  logger.With(log.Component("trace")),
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// NewFileRecorder appends records to the file at path, creating it with 0644.
func NewFileRecorder(path string, logger log.Log) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return NewRecorder(f, logger), nil
}

func (r *Recorder) Session() string { return r.session }

func (r *Recorder) OnPublish(_ string, e bus.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.seq++
	rec := Record{Session: r.session, Seq: r.seq}
	rec.fill(e)
	// tracing must not disturb interaction
	if err := r.encoder.Encode(rec); err != nil {
		r.stats.EncodeErrors++
		r.logger.Warn("trace encode failed", log.String("event", e.Type()), log.Error(err))
		return
	}
	r.stats.Records++
}

func (r *Recorder) OnDelivered(_ string, _ int, err error, _ int64) {
	if err == nil {
		return
	}
	r.mu.Lock()
	r.stats.HandlerErrors++
	r.mu.Unlock()
}

func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Close stops recording and closes the underlying writer if it is a Closer.
// It is safe to call Close multiple times.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.logger.Info("trace closed", log.Any("records", r.stats.Records))
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
