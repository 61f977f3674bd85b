package repository

import (
	"time"

	model "mini-praisells/internal/models"
)

// UserStore persists appraiCENTS ledger records.
type UserStore interface {
	GetUser(userID string) (model.User, error)
	CreateUser(user model.User) error
	TouchActivity(userID string, at time.Time) error
	// Credit adds amount to the user's balance and returns the new balance.
	Credit(userID string, amount int64) (int64, error)
	// DebitForBid subtracts amount from the user's balance and increments
	// totalBidsPlaced as one store operation, returning the new balance.
	DebitForBid(userID string, amount int64) (int64, error)
}

// AuctionStore persists auction records.
type AuctionStore interface {
	GetAuction(auctionID string) (model.Auction, error)
	ListActive() ([]model.Auction, error)
	CreateAuction(auction model.Auction) error
	// SetHighBid records the auction's current high bid. Amount 0 with an
	// empty bidderID resets the auction to the unbid state. A nil lastBidAt
	// leaves the stored lastBidAt untouched.
	SetHighBid(auctionID string, amount int64, bidderID string, lastBidAt *time.Time) error
}

// BidStore persists bid records. Bids are deactivated, never deleted.
type BidStore interface {
	InsertBid(bid model.Bid) error
	GetActiveBid(userID, auctionID string) (model.Bid, error)
	DeactivateBid(bidID string, reason model.DeactivationReason, at time.Time) error
	ListActiveByAuction(auctionID string) ([]model.Bid, error)
	ListActiveByUser(userID string) ([]model.Bid, error)
}

// Store bundles the three aggregate stores behind one construction point.
type Store interface {
	UserStore
	AuctionStore
	BidStore
}
