package bidding

import "sync"

// auctionLocks hands out one mutex per auction so every bid-placement or
// bid-removal transaction on an auction runs as an isolated unit. Locks are
// created on first use and kept for the life of the process; the auction set
// is small and seeded up front.
type auctionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAuctionLocks() *auctionLocks {
	return &auctionLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the auction's mutex and returns its unlock function.
func (l *auctionLocks) acquire(auctionID string) func() {
	l.mu.Lock()
	m, ok := l.locks[auctionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[auctionID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
