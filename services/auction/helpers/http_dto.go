package helpers

// Request DTOs for the auction API
type BalanceRequest struct {
	UserID      string `json:"userId" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}

type UserBidsRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type PlaceBidRequest struct {
	UserID      string `json:"userId" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	AuctionID   string `json:"auctionId" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
}

type RemoveBidRequest struct {
	UserID    string `json:"userId" binding:"required"`
	AuctionID string `json:"auctionId" binding:"required"`
}

// UserStats is the aggregate block returned alongside a balance.
type UserStats struct {
	DisplayName string `json:"displayName"`
	TotalBids   int64  `json:"totalBids"`
	TotalWins   int64  `json:"totalWins"`
}
