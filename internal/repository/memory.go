package repository

import (
	"fmt"
	"sync"
	"time"

	"mini-praisells/internal/auctionerrors"
	model "mini-praisells/internal/models"
)

// Compile-time check: *MemoryStore must satisfy Store.
var _ Store = (*MemoryStore)(nil)

// MemoryStore is a concurrency-safe in-memory implementation of the three
// aggregate stores
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[string]model.User    // key: userID
	auctions    map[string]model.Auction // key: auctionID
	bids        map[string]model.Bid     // key: bidID
	auctionBids map[string][]string      // key: auctionID -> bidIDs in insertion order
	userBids    map[string][]string      // key: userID -> bidIDs in insertion order
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]model.User),
		auctions:    make(map[string]model.Auction),
		bids:        make(map[string]model.Bid),
		auctionBids: make(map[string][]string),
		userBids:    make(map[string][]string),
	}
}

// GetUser returns the ledger record for a user
func (s *MemoryStore) GetUser(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateUser inserts a new ledger record
func (s *MemoryStore) CreateUser(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.UserID]; ok {
		return fmt.Errorf("create user %s: user already exists", user.UserID)
	}
	s.users[user.UserID] = user
	return nil
}

// TouchActivity updates a user's lastActivityAt timestamp
func (s *MemoryStore) TouchActivity(userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("touch activity for user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	user.LastActivityAt = at
	s.users[userID] = user
	return nil
}

// Credit adds amount to the user's balance and returns the new balance
func (s *MemoryStore) Credit(userID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, fmt.Errorf("credit user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	user.Balance += amount
	s.users[userID] = user
	return user.Balance, nil
}

// DebitForBid subtracts amount from the user's balance and increments
// totalBidsPlaced, returning the new balance
func (s *MemoryStore) DebitForBid(userID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return 0, fmt.Errorf("debit user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if user.Balance < amount {
		return 0, fmt.Errorf("debit user %s: %w", userID, auctionerrors.ErrInsufficientFunds)
	}
	user.Balance -= amount
	user.TotalBidsPlaced++
	s.users[userID] = user
	return user.Balance, nil
}

// GetAuction returns an auction by ID, active or not
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListActive returns all auctions with the active flag set
func (s *MemoryStore) ListActive() ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(s.auctions))
	for _, auction := range s.auctions {
		if auction.Active {
			auctions = append(auctions, auction)
		}
	}
	return auctions, nil
}

// CreateAuction inserts a new auction record
func (s *MemoryStore) CreateAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("create auction %s: auction already exists", auction.AuctionID)
	}
	s.auctions[auction.AuctionID] = auction
	return nil
}

// SetHighBid records the auction's current high bid and bidder
func (s *MemoryStore) SetHighBid(auctionID string, amount int64, bidderID string, lastBidAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("set high bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	auction.CurrentHighBid = amount
	auction.HighestBidderID = bidderID
	if lastBidAt != nil {
		at := *lastBidAt
		auction.LastBidAt = &at
	}
	s.auctions[auctionID] = auction
	return nil
}

// InsertBid records a new bid
func (s *MemoryStore) InsertBid(bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bids[bid.BidID]; ok {
		return fmt.Errorf("insert bid %s: bid already exists", bid.BidID)
	}
	s.bids[bid.BidID] = bid
	s.auctionBids[bid.AuctionID] = append(s.auctionBids[bid.AuctionID], bid.BidID)
	s.userBids[bid.UserID] = append(s.userBids[bid.UserID], bid.BidID)
	return nil
}

// GetActiveBid returns the user's active bid on an auction, if any
func (s *MemoryStore) GetActiveBid(userID, auctionID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userBids[userID] {
		bid := s.bids[id]
		if bid.AuctionID == auctionID && bid.Active {
			return bid, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get active bid for user %s on auction %s: %w",
		userID, auctionID, auctionerrors.ErrBidNotFound)
}

// DeactivateBid marks a bid inactive with a reason and timestamp
func (s *MemoryStore) DeactivateBid(bidID string, reason model.DeactivationReason, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return fmt.Errorf("deactivate bid %s: %w", bidID, auctionerrors.ErrBidNotFound)
	}
	bid.Active = false
	deactivated := at
	bid.DeactivatedAt = &deactivated
	bid.DeactivationReason = reason
	s.bids[bidID] = bid
	return nil
}

// ListActiveByAuction returns all active bids on an auction
func (s *MemoryStore) ListActiveByAuction(auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, id := range s.auctionBids[auctionID] {
		if bid := s.bids[id]; bid.Active {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// ListActiveByUser returns all active bids placed by a user
func (s *MemoryStore) ListActiveByUser(userID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, id := range s.userBids[userID] {
		if bid := s.bids[id]; bid.Active {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// AllBidsByUser returns every bid a user has placed, active or not. Bids are
// never deleted, so this is the user's full bid history.
func (s *MemoryStore) AllBidsByUser(userID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]model.Bid, 0, len(s.userBids[userID]))
	for _, id := range s.userBids[userID] {
		bids = append(bids, s.bids[id])
	}
	return bids, nil
}
