package xtest

import (
	"sync"
)

// Records is a concurrent-safe in-memory sink for diagnostic messages.
type Records struct {
	mu      sync.Mutex
	records []string
}

func (r *Records) Add(record string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
}

func (r *Records) All() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.records...)
}

func (r *Records) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}
