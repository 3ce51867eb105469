package memory

import (
	"context"
	"sync"

	"github.com/aretw0/steer/pkg/domain"
)

// Record is one published command.
type Record struct {
	Tick    domain.Tick    `json:"tick"`
	Command domain.Command `json:"command"`
}

// Recorder implements ports.CommandSink and ports.CommandSource in memory.
// It keeps the most recent records up to a capacity. Safe for concurrent use.
type Recorder struct {
	mu       sync.RWMutex
	records  []Record
	capacity int
	total    uint64
}

// NewRecorder keeps at most capacity records; capacity <= 0 keeps everything.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{capacity: capacity}
}

// Publish stores the command.
func (r *Recorder) Publish(ctx context.Context, tick domain.Tick, cmd domain.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, Record{Tick: tick, Command: cmd})
	if r.capacity > 0 && len(r.records) > r.capacity {
		// Shift in place so the backing array does not grow without bound.
		n := copy(r.records, r.records[len(r.records)-r.capacity:])
		r.records = r.records[:n]
	}
	r.total++
	return nil
}

// Last returns the most recent record.
func (r *Recorder) Last(ctx context.Context) (domain.Tick, domain.Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.records) == 0 {
		return domain.Tick{}, domain.Command{}, domain.ErrNoCommand
	}
	last := r.records[len(r.records)-1]
	return last.Tick, last.Command, nil
}

// Records returns a copy of the retained records, oldest first.
func (r *Recorder) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Commands returns only the commands of the retained records.
func (r *Recorder) Commands() []domain.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Command, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Command
	}
	return out
}

// Total returns how many commands were ever published.
func (r *Recorder) Total() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total
}
