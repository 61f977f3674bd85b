package handler

import (
	"time"

	"mini-praisells/internal/config"
	model "mini-praisells/internal/models"
	"mini-praisells/services/auction/helpers"
	"mini-praisells/utils"

	"github.com/gin-gonic/gin"
)

type BiddingEngineInterface interface {
	PlaceBid(userID, displayName, auctionID string, amount int64) (int64, error)
	RemoveBid(userID, auctionID string) (int64, error)
	GetBalance(userID, displayName string) (model.User, error)
	ListActiveAuctions() ([]model.Auction, error)
	ListUserBids(userID string) ([]model.Bid, error)
}

type AuctionHandler struct {
	engine BiddingEngineInterface
}

func NewAuctionHandler(engine BiddingEngineInterface) *AuctionHandler {
	return &AuctionHandler{engine: engine}
}

// GetBalanceHandler handles POST /api/user/balance
func (h *AuctionHandler) GetBalanceHandler(c *gin.Context) {
	var req helpers.BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "GetBalanceHandler", err)
		return
	}

	user, err := h.engine.GetBalance(req.UserID, req.DisplayName)
	if err != nil {
		status, message := helpers.MapErrorToFailure(err)
		utils.JSONFailure(c, status, message)
		utils.Error("GetBalanceHandler: failed to resolve user", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, gin.H{
		"balance": user.Balance,
		"user": helpers.UserStats{
			DisplayName: user.DisplayName,
			TotalBids:   user.TotalBidsPlaced,
			TotalWins:   user.TotalWins,
		},
	})
	helpers.LogSuccess("GetBalanceHandler", "balance retrieved", map[string]any{
		"user_id": req.UserID,
		"balance": user.Balance,
	})
}

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.engine.ListActiveAuctions()
	if err != nil {
		status, message := helpers.MapErrorToFailure(err)
		utils.JSONFailure(c, status, message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONSuccess(c, gin.H{"auctions": auctions})
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved", map[string]any{
		"count": len(auctions),
	})
}

// GetUserBidsHandler handles POST /api/user/bids
func (h *AuctionHandler) GetUserBidsHandler(c *gin.Context) {
	var req helpers.UserBidsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "GetUserBidsHandler", err)
		return
	}

	bids, err := h.engine.ListUserBids(req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToFailure(err)
		utils.JSONFailure(c, status, message)
		utils.Warn("GetUserBidsHandler: error retrieving bids", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONSuccess(c, gin.H{"bids": bids})
	helpers.LogSuccess("GetUserBidsHandler", "bids retrieved", map[string]any{
		"user_id": req.UserID,
		"count":   len(bids),
	})
}

// PlaceBidHandler handles POST /api/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	newBalance, err := h.engine.PlaceBid(req.UserID, req.DisplayName, req.AuctionID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToFailure(err)
		utils.JSONFailure(c, status, message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"user_id":    req.UserID,
			"auction_id": req.AuctionID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, gin.H{
		"message":    "Bid placed successfully",
		"newBalance": newBalance,
	})
	helpers.LogSuccess("PlaceBidHandler", "bid placed", map[string]any{
		"user_id":     req.UserID,
		"auction_id":  req.AuctionID,
		"amount":      req.Amount,
		"new_balance": newBalance,
	})
}

// RemoveBidHandler handles POST /api/bid/remove
func (h *AuctionHandler) RemoveBidHandler(c *gin.Context) {
	var req helpers.RemoveBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RemoveBidHandler", err)
		return
	}

	refunded, err := h.engine.RemoveBid(req.UserID, req.AuctionID)
	if err != nil {
		status, message := helpers.MapErrorToFailure(err)
		utils.JSONFailure(c, status, message)
		utils.Warn("RemoveBidHandler: failed to remove bid", map[string]any{
			"user_id":    req.UserID,
			"auction_id": req.AuctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, gin.H{
		"message":        "Bid removed and appraiCENTS refunded",
		"refundedAmount": refunded,
	})
	helpers.LogSuccess("RemoveBidHandler", "bid removed", map[string]any{
		"user_id":    req.UserID,
		"auction_id": req.AuctionID,
		"refunded":   refunded,
	})
}

// HealthHandler handles GET /api/health
func (h *AuctionHandler) HealthHandler(c *gin.Context) {
	utils.JSONSuccess(c, gin.H{
		"message":   config.AppName + " server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"appName":   config.AppName,
		"currency":  config.CurrencyName,
	})
}
