package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mini-praisells/internal/auctionerrors"
	model "mini-praisells/internal/models"
	"mini-praisells/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*MockBiddingEngineInterface, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockEngine := NewMockBiddingEngineInterface(ctrl)
	h := NewAuctionHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", h.HealthHandler)
	router.GET("/api/auctions", h.ListAuctionsHandler)
	router.POST("/api/bid", h.PlaceBidHandler)
	router.POST("/api/bid/remove", h.RemoveBidHandler)
	router.POST("/api/user/balance", h.GetBalanceHandler)
	router.POST("/api/user/bids", h.GetUserBidsHandler)
	return mockEngine, router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp, w
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	tests := []struct {
		name        string
		requestBody any
		mockSetup   func(m *MockBiddingEngineInterface)
		wantStatus  int
		wantSuccess bool
		wantMessage string
		validate    func(t *testing.T, resp map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: helpers.PlaceBidRequest{UserID: "user1", DisplayName: "Alice", AuctionID: "auction1", Amount: 100},
			mockSetup: func(m *MockBiddingEngineInterface) {
				m.EXPECT().PlaceBid("user1", "Alice", "auction1", int64(100)).Return(int64(900), nil)
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			validate: func(t *testing.T, resp map[string]any) {
				require.Equal(t, 900.0, resp["newBalance"])
				require.Equal(t, "Bid placed successfully", resp["message"])
			},
		},
		{
			name:        "bid_too_low_reports_minimum",
			requestBody: helpers.PlaceBidRequest{UserID: "user1", DisplayName: "Alice", AuctionID: "auction1", Amount: 40},
			mockSetup: func(m *MockBiddingEngineInterface) {
				m.EXPECT().PlaceBid("user1", "Alice", "auction1", int64(40)).
					Return(int64(0), fmt.Errorf("engine: %w", &auctionerrors.BidTooLowError{Minimum: 51}))
			},
			wantStatus:  http.StatusOK,
			wantSuccess: false,
			wantMessage: "Bid must be at least 51 aC",
		},
		{
			name:        "insufficient_funds_is_in_band",
			requestBody: helpers.PlaceBidRequest{UserID: "user1", DisplayName: "Alice", AuctionID: "auction1", Amount: 5000},
			mockSetup: func(m *MockBiddingEngineInterface) {
				m.EXPECT().PlaceBid("user1", "Alice", "auction1", int64(5000)).
					Return(int64(0), fmt.Errorf("engine: %w", auctionerrors.ErrInsufficientFunds))
			},
			wantStatus:  http.StatusOK,
			wantSuccess: false,
			wantMessage: "Insufficient appraiCENTS balance",
		},
		{
			name:        "auction_not_found",
			requestBody: helpers.PlaceBidRequest{UserID: "user1", DisplayName: "Alice", AuctionID: "auctionX", Amount: 100},
			mockSetup: func(m *MockBiddingEngineInterface) {
				m.EXPECT().PlaceBid("user1", "Alice", "auctionX", int64(100)).
					Return(int64(0), fmt.Errorf("engine: %w", auctionerrors.ErrAuctionNotFound))
			},
			wantStatus:  http.StatusOK,
			wantSuccess: false,
			wantMessage: "Auction not found or inactive",
		},
		{
			name:        "store_failure_is_generic_500",
			requestBody: helpers.PlaceBidRequest{UserID: "user1", DisplayName: "Alice", AuctionID: "auction1", Amount: 100},
			mockSetup: func(m *MockBiddingEngineInterface) {
				m.EXPECT().PlaceBid("user1", "Alice", "auction1", int64(100)).
					Return(int64(0), fmt.Errorf("engine: %w", auctionerrors.ErrStoreUnavailable))
			},
			wantStatus:  http.StatusInternalServerError,
			wantSuccess: false,
			wantMessage: "internal server error",
		},
		{
			name:        "malformed_json",
			requestBody: "{userId: 'missing quotes'}",
			mockSetup:   func(m *MockBiddingEngineInterface) {},
			wantStatus:  http.StatusBadRequest,
			wantSuccess: false,
			wantMessage: "invalid request payload",
		},
		{
			name:        "missing_amount",
			requestBody: map[string]any{"userId": "user1", "displayName": "Alice", "auctionId": "auction1"},
			mockSetup:   func(m *MockBiddingEngineInterface) {},
			wantStatus:  http.StatusBadRequest,
			wantSuccess: false,
			wantMessage: "invalid request payload",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockEngine, router := setupHandlerTest(t)
			tc.mockSetup(mockEngine)

			resp, w := doJSON(t, router, http.MethodPost, "/api/bid", tc.requestBody)
			require.Equal(t, tc.wantStatus, w.Code)
			require.Equal(t, tc.wantSuccess, resp["success"])
			if tc.wantMessage != "" {
				require.Equal(t, tc.wantMessage, resp["message"])
			}
			if tc.validate != nil {
				tc.validate(t, resp)
			}
		})
	}
}

// Test RemoveBidHandler
func TestRemoveBidHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().RemoveBid("user1", "auction1").Return(int64(60), nil)

		resp, w := doJSON(t, router, http.MethodPost, "/api/bid/remove",
			helpers.RemoveBidRequest{UserID: "user1", AuctionID: "auction1"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, resp["success"])
		require.Equal(t, 60.0, resp["refundedAmount"])
	})

	t.Run("no_active_bid", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().RemoveBid("user1", "auction1").
			Return(int64(0), fmt.Errorf("engine: %w", auctionerrors.ErrBidNotFound))

		resp, w := doJSON(t, router, http.MethodPost, "/api/bid/remove",
			helpers.RemoveBidRequest{UserID: "user1", AuctionID: "auction1"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, false, resp["success"])
		require.Equal(t, "No active bid found", resp["message"])
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, router := setupHandlerTest(t)
		resp, w := doJSON(t, router, http.MethodPost, "/api/bid/remove", map[string]any{"userId": "user1"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, false, resp["success"])
	})
}

// Test GetBalanceHandler
func TestGetBalanceHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().GetBalance("user1", "Alice").Return(model.User{
			UserID:          "user1",
			DisplayName:     "Alice",
			Balance:         950,
			TotalBidsPlaced: 3,
			TotalWins:       1,
		}, nil)

		resp, w := doJSON(t, router, http.MethodPost, "/api/user/balance",
			helpers.BalanceRequest{UserID: "user1", DisplayName: "Alice"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, resp["success"])
		require.Equal(t, 950.0, resp["balance"])

		user := resp["user"].(map[string]any)
		require.Equal(t, "Alice", user["displayName"])
		require.Equal(t, 3.0, user["totalBids"])
		require.Equal(t, 1.0, user["totalWins"])
	})

	t.Run("missing_display_name", func(t *testing.T) {
		_, router := setupHandlerTest(t)
		resp, w := doJSON(t, router, http.MethodPost, "/api/user/balance", map[string]any{"userId": "user1"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, false, resp["success"])
	})

	t.Run("engine_failure", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().GetBalance("user1", "Alice").
			Return(model.User{}, errors.New("unexpected"))

		resp, w := doJSON(t, router, http.MethodPost, "/api/user/balance",
			helpers.BalanceRequest{UserID: "user1", DisplayName: "Alice"})
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, false, resp["success"])
	})
}

// Test ListAuctionsHandler
func TestListAuctionsHandler(t *testing.T) {
	t.Run("returns_active_auctions", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		now := time.Now().UTC()
		mockEngine.EXPECT().ListActiveAuctions().Return([]model.Auction{
			{AuctionID: "auction1", SellerLabel: "Studio", Title: "Neon Cityscape", ReserveBid: 50, Active: true, EndsAt: now, CreatedAt: now},
		}, nil)

		resp, w := doJSON(t, router, http.MethodGet, "/api/auctions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, resp["success"])

		auctions := resp["auctions"].([]any)
		require.Len(t, auctions, 1)
		first := auctions[0].(map[string]any)
		require.Equal(t, "auction1", first["id"])
		require.Equal(t, 50.0, first["reserveBid"])
	})

	t.Run("empty_list_not_null", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().ListActiveAuctions().Return(nil, nil)

		resp, w := doJSON(t, router, http.MethodGet, "/api/auctions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, resp["auctions"])
		require.Empty(t, resp["auctions"])
	})
}

// Test GetUserBidsHandler
func TestGetUserBidsHandler(t *testing.T) {
	t.Run("returns_active_bids", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		now := time.Now().UTC()
		mockEngine.EXPECT().ListUserBids("user1").Return([]model.Bid{
			{BidID: "bid1", UserID: "user1", AuctionID: "auction1", Amount: 60, Active: true, CreatedAt: now},
		}, nil)

		resp, w := doJSON(t, router, http.MethodPost, "/api/user/bids",
			helpers.UserBidsRequest{UserID: "user1"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, true, resp["success"])

		bids := resp["bids"].([]any)
		require.Len(t, bids, 1)
		first := bids[0].(map[string]any)
		require.Equal(t, "auction1", first["auctionId"])
		require.Equal(t, 60.0, first["amount"])
	})

	t.Run("missing_user_id", func(t *testing.T) {
		_, router := setupHandlerTest(t)
		resp, w := doJSON(t, router, http.MethodPost, "/api/user/bids", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, false, resp["success"])
	})
}

// Test HealthHandler
func TestHealthHandler(t *testing.T) {
	_, router := setupHandlerTest(t)

	resp, w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["success"])
	require.Equal(t, "appraiCENTS", resp["currency"])

	_, err := time.Parse(time.RFC3339, resp["timestamp"].(string))
	require.NoError(t, err)
}
