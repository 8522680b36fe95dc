package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"auction-spot/internal/auctionerrors"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleBindError sends a standardized JSON error for binding failures:
// 422 when the payload decoded but failed validation, 400 otherwise.
func HandleBindError(c *gin.Context, handlerName string, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		wrappedErr := fmt.Errorf("%w: %w", auctionerrors.ErrInvalidInput, err)
		utils.JSONError(c, http.StatusUnprocessableEntity, wrappedErr, "missing or invalid fields")
		utils.Warn(handlerName+": validation error", map[string]any{"error": err.Error()})
		return
	}

	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrPlayerNotFound):
		return http.StatusNotFound, "player not found"
	case errors.Is(err, auctionerrors.ErrTeamNotFound):
		return http.StatusNotFound, "team not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrNotificationNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusUnprocessableEntity, "missing or invalid fields"
	case errors.Is(err, auctionerrors.ErrAuctionNotLive):
		return http.StatusBadRequest, "auction not live"
	case errors.Is(err, auctionerrors.ErrBudgetExceeded):
		return http.StatusBadRequest, "budget exceeded"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusBadRequest, "no bids placed"
	case errors.Is(err, auctionerrors.ErrPlayerSold):
		return http.StatusBadRequest, "player already sold"
	case errors.Is(err, auctionerrors.ErrRosterFull):
		return http.StatusBadRequest, "team roster full"
	case errors.Is(err, auctionerrors.ErrWinningTeamMissing):
		return http.StatusBadRequest, "winning team missing"
	case errors.Is(err, auctionerrors.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid auction status"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusBadRequest, "invalid status transition"
	case errors.As(err, &syntaxErr):
		return http.StatusBadRequest, "invalid request payload"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response and logs it under the handler name
func RespondError(c *gin.Context, handlerName, logMessage string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+logMessage, fields)
		return
	}
	utils.Warn(handlerName+": "+logMessage, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
