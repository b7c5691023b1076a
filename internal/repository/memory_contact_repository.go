package repository

import (
	"context"
	"sync"
	"time"

	"github.com/VETechnologiesCo/VPCO/internal/model"
)

// MemoryContactRepository keeps submissions in process memory. Contents are
// lost on restart.
type MemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []model.ContactSubmission
	now      func() time.Time
}

// NewMemoryContactRepository creates an empty in-memory store.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{now: time.Now}
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

// Save assigns the next ID (stored count + 1) and the append timestamp, then
// appends a copy of c. ID assignment and append happen under one lock so
// concurrent callers never receive the same ID.
func (r *MemoryContactRepository) Save(_ context.Context, c *model.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = int64(len(r.contacts) + 1)
	c.Timestamp = r.now().UTC()
	r.contacts = append(r.contacts, *c)
	return nil
}

// List returns copies of the stored submissions in insertion order.
func (r *MemoryContactRepository) List(_ context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := opts.Offset
	if start < 0 {
		start = 0
	}
	if start > len(r.contacts) {
		start = len(r.contacts)
	}
	end := len(r.contacts)
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}

	out := make([]*model.ContactSubmission, 0, end-start)
	for i := start; i < end; i++ {
		c := r.contacts[i]
		out = append(out, &c)
	}
	return out, nil
}

// Count returns the number of stored submissions.
func (r *MemoryContactRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contacts), nil
}
