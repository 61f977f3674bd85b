package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"mini-praisells/internal/auctionerrors"
	"mini-praisells/internal/config"
	"mini-praisells/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized failure envelope for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONFailure(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToFailure maps engine errors to an HTTP status and the in-band
// failure message. Business failures stay on status 200 - the envelope's
// success flag carries the outcome; only store or unexpected errors become
// a 500.
func MapErrorToFailure(err error) (int, string) {
	var tooLow *auctionerrors.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		return http.StatusOK, fmt.Sprintf("Bid must be at least %d %s", tooLow.Minimum, config.CurrencySymbol)
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusOK, "All fields required"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusOK, fmt.Sprintf("Insufficient %s balance", config.CurrencyName)
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusOK, "Auction not found or inactive"
	case errors.Is(err, auctionerrors.ErrBidNotFound):
		return http.StatusOK, "No active bid found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
