package command

import (
	"sync"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// bucketLocks serializes reconciliation per bucket key. Two concurrent
// reconciles of the same bucket would race on the read-then-write count
// comparison; disjoint buckets proceed in parallel.
type bucketLocks struct {
	mu    sync.Mutex
	locks map[domain.BucketKey]*sync.Mutex
}

func newBucketLocks() *bucketLocks {
	return &bucketLocks{locks: make(map[domain.BucketKey]*sync.Mutex)}
}

// acquire locks the given bucket and returns the release function.
func (b *bucketLocks) acquire(key domain.BucketKey) func() {
	b.mu.Lock()
	lock, ok := b.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		b.locks[key] = lock
	}
	b.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
