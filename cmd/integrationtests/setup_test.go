package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bidding "mini-praisells/internal/biddingEngine"
	"mini-praisells/internal/config"
	model "mini-praisells/internal/models"
	"mini-praisells/internal/repository"
	"mini-praisells/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router over an in-memory store seeded with
// the given auctions.
func SetupTestRouter(t *testing.T, auctions ...model.Auction) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, auction := range auctions {
		require.NoError(t, store.CreateAuction(auction))
	}

	cfg := config.Default()
	engine := bidding.NewEngine(store, store, store, cfg)
	return server.SetupRouter(engine, cfg)
}

// testAuction returns an active auction with the given reserve.
func testAuction(auctionID string, reserveBid int64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:   auctionID,
		SellerLabel: "Test Studio",
		Title:       auctionID + " artwork",
		Description: auctionID + " description",
		ReserveBid:  reserveBid,
		Active:      true,
		EndsAt:      now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
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
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// placeBid is a shorthand for the bid call used across the flows.
func placeBid(t *testing.T, router *gin.Engine, userID, displayName, auctionID string, amount int64) map[string]any {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/api/bid", map[string]any{
		"userId":      userID,
		"displayName": displayName,
		"auctionId":   auctionID,
		"amount":      amount,
	})
	require.Equal(t, http.StatusOK, w.Code)
	return resp
}
