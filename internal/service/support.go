package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	prefixPayment      = "pay"
	prefixComplaint    = "comp"
	prefixProperty     = "prop"
	prefixNotification = "note"
)

type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator issues ids of the form <prefix>_<uuid v4>.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

type Clock func() time.Time

// CallTracker holds the cancel functions of in-flight advisory calls so a
// page change or logout can abandon them.
type CallTracker struct {
	mu      sync.Mutex
	next    uint64
	cancels map[uint64]context.CancelFunc
}

func NewCallTracker() *CallTracker {
	return &CallTracker{cancels: make(map[uint64]context.CancelFunc)}
}

// Track derives a cancellable context; the returned func must be called when
// the call finishes.
func (t *CallTracker) Track(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	t.mu.Lock()
	id := t.next
	t.next++
	t.cancels[id] = cancel
	t.mu.Unlock()

	return ctx, func() {
		t.mu.Lock()
		delete(t.cancels, id)
		t.mu.Unlock()
		cancel()
	}
}

// CancelAll cancels every tracked call and returns how many there were.
func (t *CallTracker) CancelAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.cancels)
	for id, cancel := range t.cancels {
		cancel()
		delete(t.cancels, id)
	}
	return n
}

func (t *CallTracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cancels)
}
