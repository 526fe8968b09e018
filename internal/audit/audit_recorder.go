package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	queueSize    = 256
	writeTimeout = 5 * time.Second
)

// Record describes one privileged action.
type Record struct {
	ActorID    string
	ActorRole  string
	Action     string
	TargetType string
	TargetID   string
	Metadata   map[string]any
}

// Recorder appends audit entries through a dedicated writer goroutine. Record
// never blocks and never returns an error to the caller: a full queue drops
// the entry with a local log, and a failed insert is logged and swallowed.
// Audit is best-effort, not transactional with the action it describes.
type Recorder struct {
	repo   Repository
	queue  chan Record
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
	logger *zap.Logger
}

func NewRecorder(repo Repository, logger *zap.Logger) *Recorder {
	r := &Recorder{
		repo:   repo,
		queue:  make(chan Record, queueSize),
		done:   make(chan struct{}),
		logger: logger.Named("audit.recorder"),
	}

	go r.run()

	return r
}

func (r *Recorder) Record(rec Record) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.logger.Warn("audit recorder closed, dropping entry",
			zap.String("action", rec.Action),
			zap.String("actor_id", rec.ActorID),
		)
		return
	}

	select {
	case r.queue <- rec:
	default:
		r.logger.Warn("audit queue full, dropping entry",
			zap.String("action", rec.Action),
			zap.String("actor_id", rec.ActorID),
		)
	}
}

// Close drains the queue and stops the writer. Safe to call more than once,
// and a Record racing with Close drops its entry instead of panicking on the
// closed queue.
func (r *Recorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)

	for rec := range r.queue {
		r.write(rec)
	}
}

func (r *Recorder) write(rec Record) {
	actorID, err := uuid.Parse(rec.ActorID)
	if err != nil {
		r.logger.Warn("audit entry with invalid actor id dropped",
			zap.String("actor_id", rec.ActorID),
			zap.String("action", rec.Action),
		)
		return
	}

	entry := &Entry{
		ActorID:    actorID,
		ActorRole:  rec.ActorRole,
		Action:     rec.Action,
		TargetType: rec.TargetType,
		TargetID:   rec.TargetID,
	}

	if rec.Metadata != nil {
		payload, err := json.Marshal(rec.Metadata)
		if err != nil {
			r.logger.Warn("audit metadata marshal failed", zap.Error(err))
		} else {
			entry.Metadata = payload
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.repo.Insert(ctx, entry); err != nil {
		r.logger.Error("audit write failed",
			zap.String("action", rec.Action),
			zap.String("actor_id", rec.ActorID),
			zap.Error(err),
		)
	}
}
