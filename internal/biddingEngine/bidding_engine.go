package bidding

import (
	"errors"
	"fmt"
	"time"

	"mini-praisells/internal/auctionerrors"
	"mini-praisells/internal/config"
	"mini-praisells/internal/models"
	"mini-praisells/internal/repository"
	"mini-praisells/utils"
)

// Engine orchestrates balance checks, bid supersession, refunds and
// high-bid recomputation across the three stores. Each mutating operation
// runs under the auction's lock so no caller observes a partial state.
type Engine struct {
	users    repository.UserStore
	auctions repository.AuctionStore
	bids     repository.BidStore
	cfg      *config.Config
	locks    *auctionLocks
}

// NewEngine creates a new Engine instance with injected stores.
func NewEngine(users repository.UserStore, auctions repository.AuctionStore, bids repository.BidStore, cfg *config.Config) *Engine {
	return &Engine{
		users:    users,
		auctions: auctions,
		bids:     bids,
		cfg:      cfg,
		locks:    newAuctionLocks(),
	}
}

// PlaceBid validates and applies a user's bid on an auction, returning the
// user's new balance. A still-standing bid by the same user on the same
// auction is refunded and deactivated as replaced; a standing high bid by a
// different user is refunded and deactivated as outbid.
func (e *Engine) PlaceBid(userID, displayName, auctionID string, amount int64) (int64, error) {
	if userID == "" || displayName == "" || auctionID == "" {
		return 0, fmt.Errorf("engine: %w - missing user, display name or auction", auctionerrors.ErrValidation)
	}
	if amount <= 0 || amount > e.cfg.MaxBidAmount {
		return 0, fmt.Errorf("engine: %w - bid amount must be between 1 and %d",
			auctionerrors.ErrValidation, e.cfg.MaxBidAmount)
	}

	unlock := e.locks.acquire(auctionID)
	defer unlock()

	user, err := e.resolveUser(userID, displayName)
	if err != nil {
		return 0, err
	}

	if user.Balance < amount {
		return 0, fmt.Errorf("engine: %w - balance is %d", auctionerrors.ErrInsufficientFunds, user.Balance)
	}

	auction, err := e.auctions.GetAuction(auctionID)
	if err != nil {
		return 0, fmt.Errorf("engine: failed to get auction %s: %w", auctionID, err)
	}
	if !auction.Active {
		return 0, fmt.Errorf("engine: auction %s is closed: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	base := auction.ReserveBid
	if auction.CurrentHighBid > 0 {
		base = auction.CurrentHighBid
	}
	minimum := base + e.cfg.MinBidIncrement
	if amount < minimum {
		return 0, fmt.Errorf("engine: %w", &auctionerrors.BidTooLowError{Minimum: minimum})
	}

	now := time.Now().UTC()
	newBalance := user.Balance

	// Refund and supersede the user's own standing bid first, so it never
	// takes the outbid path below.
	if existing, err := e.bids.GetActiveBid(userID, auctionID); err == nil {
		if newBalance, err = e.users.Credit(userID, existing.Amount); err != nil {
			return 0, fmt.Errorf("engine: failed to refund replaced bid %s: %w", existing.BidID, err)
		}
		if err := e.bids.DeactivateBid(existing.BidID, models.ReasonReplaced, now); err != nil {
			return 0, fmt.Errorf("engine: failed to deactivate replaced bid %s: %w", existing.BidID, err)
		}
	} else if !errors.Is(err, auctionerrors.ErrBidNotFound) {
		return 0, fmt.Errorf("engine: failed to check existing bid: %w", err)
	}

	// Refund the standing high bidder when someone else outbids them.
	if auction.CurrentHighBid > 0 && auction.HighestBidderID != "" && auction.HighestBidderID != userID {
		prev, err := e.bids.GetActiveBid(auction.HighestBidderID, auctionID)
		switch {
		case err == nil:
			if _, err := e.users.Credit(prev.UserID, prev.Amount); err != nil {
				return 0, fmt.Errorf("engine: failed to refund outbid user %s: %w", prev.UserID, err)
			}
			if err := e.bids.DeactivateBid(prev.BidID, models.ReasonOutbid, now); err != nil {
				return 0, fmt.Errorf("engine: failed to deactivate outbid bid %s: %w", prev.BidID, err)
			}
		case !errors.Is(err, auctionerrors.ErrBidNotFound):
			return 0, fmt.Errorf("engine: failed to look up outbid bid: %w", err)
		}
	}

	newBalance, err = e.users.DebitForBid(userID, amount)
	if err != nil {
		return 0, fmt.Errorf("engine: failed to debit user %s: %w", userID, err)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		UserID:    userID,
		AuctionID: auctionID,
		Amount:    amount,
		Active:    true,
		CreatedAt: now,
	}
	if err := e.bids.InsertBid(bid); err != nil {
		return 0, fmt.Errorf("engine: failed to insert bid for auction %s: %w", auctionID, err)
	}

	if err := e.auctions.SetHighBid(auctionID, amount, userID, &now); err != nil {
		return 0, fmt.Errorf("engine: failed to update high bid for auction %s: %w", auctionID, err)
	}

	utils.Info("bid placed", map[string]any{
		"user_id":     userID,
		"auction_id":  auctionID,
		"amount":      amount,
		"new_balance": newBalance,
	})

	return newBalance, nil
}

// RemoveBid withdraws the user's active bid on an auction, refunds it and
// recomputes the auction's high bid over the remaining active bids. Returns
// the refunded amount.
func (e *Engine) RemoveBid(userID, auctionID string) (int64, error) {
	if userID == "" || auctionID == "" {
		return 0, fmt.Errorf("engine: %w - missing user or auction", auctionerrors.ErrValidation)
	}

	unlock := e.locks.acquire(auctionID)
	defer unlock()

	bid, err := e.bids.GetActiveBid(userID, auctionID)
	if err != nil {
		return 0, fmt.Errorf("engine: failed to find bid to remove: %w", err)
	}

	now := time.Now().UTC()
	if _, err := e.users.Credit(userID, bid.Amount); err != nil {
		return 0, fmt.Errorf("engine: failed to refund removed bid %s: %w", bid.BidID, err)
	}
	if err := e.bids.DeactivateBid(bid.BidID, models.ReasonRemoved, now); err != nil {
		return 0, fmt.Errorf("engine: failed to deactivate removed bid %s: %w", bid.BidID, err)
	}

	remaining, err := e.bids.ListActiveByAuction(auctionID)
	if err != nil {
		return 0, fmt.Errorf("engine: failed to list remaining bids for auction %s: %w", auctionID, err)
	}

	highBid, bidderID := topBid(remaining)
	if err := e.auctions.SetHighBid(auctionID, highBid, bidderID, nil); err != nil {
		return 0, fmt.Errorf("engine: failed to update high bid for auction %s: %w", auctionID, err)
	}

	utils.Info("bid removed", map[string]any{
		"user_id":    userID,
		"auction_id": auctionID,
		"refunded":   bid.Amount,
	})

	return bid.Amount, nil
}

// GetBalance resolves the user, creating them with the starting balance on
// first contact, and returns the ledger record with aggregate stats.
func (e *Engine) GetBalance(userID, displayName string) (models.User, error) {
	if userID == "" || displayName == "" {
		return models.User{}, fmt.Errorf("engine: %w - missing user ID or display name", auctionerrors.ErrValidation)
	}
	return e.resolveUser(userID, displayName)
}

// ListActiveAuctions returns all auctions open for bidding.
func (e *Engine) ListActiveAuctions() ([]models.Auction, error) {
	auctions, err := e.auctions.ListActive()
	if err != nil {
		return nil, fmt.Errorf("engine: failed to list active auctions: %w", err)
	}
	return auctions, nil
}

// ListUserBids returns the user's currently active bids.
func (e *Engine) ListUserBids(userID string) ([]models.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("engine: %w - missing user ID", auctionerrors.ErrValidation)
	}
	bids, err := e.bids.ListActiveByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to list bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// resolveUser looks up the user, creating the ledger record with the
// starting balance on first contact and touching lastActivityAt otherwise.
func (e *Engine) resolveUser(userID, displayName string) (models.User, error) {
	user, err := e.users.GetUser(userID)
	if errors.Is(err, auctionerrors.ErrUserNotFound) {
		now := time.Now().UTC()
		user = models.User{
			UserID:         userID,
			DisplayName:    displayName,
			Balance:        e.cfg.StartingBalance,
			CreatedAt:      now,
			LastActivityAt: now,
		}
		if err := e.users.CreateUser(user); err != nil {
			return models.User{}, fmt.Errorf("engine: failed to create user %s: %w", userID, err)
		}
		utils.Info("new user created", map[string]any{
			"user_id": userID,
			"balance": user.Balance,
		})
		return user, nil
	}
	if err != nil {
		return models.User{}, fmt.Errorf("engine: failed to get user %s: %w", userID, err)
	}

	if err := e.users.TouchActivity(userID, time.Now().UTC()); err != nil {
		return models.User{}, fmt.Errorf("engine: failed to touch activity for user %s: %w", userID, err)
	}
	return user, nil
}

// topBid picks the highest-amount bid, breaking ties by earliest createdAt.
// Returns (0, "") when no active bids remain.
func topBid(bids []models.Bid) (int64, string) {
	var (
		amount   int64
		bidderID string
		earliest time.Time
	)
	for _, b := range bids {
		if b.Amount > amount || (b.Amount == amount && amount > 0 && b.CreatedAt.Before(earliest)) {
			amount = b.Amount
			bidderID = b.UserID
			earliest = b.CreatedAt
		}
	}
	return amount, bidderID
}
