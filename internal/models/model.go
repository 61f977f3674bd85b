package models

import "time"

// DeactivationReason records why a bid left the active set.
type DeactivationReason string

const (
	// ReasonReplaced marks a bid superseded by the owner's own higher bid.
	ReasonReplaced DeactivationReason = "replaced"
	// ReasonOutbid marks a bid superseded by another user's higher bid.
	ReasonOutbid DeactivationReason = "outbid"
	// ReasonRemoved marks a bid withdrawn by its owner.
	ReasonRemoved DeactivationReason = "removed"
)

// User holds a participant's appraiCENTS ledger record. Balance plus the
// sum of the user's active bid amounts always equals the amount ever
// credited to the user.
type User struct {
	UserID          string    `json:"id"`
	DisplayName     string    `json:"displayName"`
	Balance         int64     `json:"balance"`
	TotalBidsPlaced int64     `json:"totalBidsPlaced"`
	TotalWins       int64     `json:"totalWins"`
	CreatedAt       time.Time `json:"createdAt"`
	LastActivityAt  time.Time `json:"lastActivityAt"`
}

// Auction represents an art auction. CurrentHighBid == 0 means no bid yet;
// whenever it is positive, HighestBidderID names the user holding an active
// bid of exactly that amount.
type Auction struct {
	AuctionID       string     `json:"id"`
	SellerLabel     string     `json:"sellerLabel"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ReserveBid      int64      `json:"reserveBid"`
	CurrentHighBid  int64      `json:"currentHighBid"`
	HighestBidderID string     `json:"highestBidderId,omitempty"`
	Active          bool       `json:"active"`
	EndsAt          time.Time  `json:"endsAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastBidAt       *time.Time `json:"lastBidAt,omitempty"`
}

// Bid links a user to an auction with an escrowed amount. Bids are
// deactivated with a reason, never deleted; at most one active bid exists
// per (user, auction) pair.
type Bid struct {
	BidID              string             `json:"id"`
	UserID             string             `json:"userId"`
	AuctionID          string             `json:"auctionId"`
	Amount             int64              `json:"amount"`
	Active             bool               `json:"active"`
	CreatedAt          time.Time          `json:"createdAt"`
	DeactivatedAt      *time.Time         `json:"deactivatedAt,omitempty"`
	DeactivationReason DeactivationReason `json:"deactivationReason,omitempty"`
}
