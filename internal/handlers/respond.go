package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattmach1/restaurant-inventory/internal/apperrors"
	"github.com/mattmach1/restaurant-inventory/internal/core/domain"
	"github.com/mattmach1/restaurant-inventory/internal/middleware"
)

// ErrorResponse is the generic error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError maps a service error to its HTTP status. AppError
// messages are safe for clients; anything else is logged and hidden behind
// the fallback message with a 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	status := apperrors.StatusCode(err)

	var appErr *apperrors.AppError
	if status < http.StatusInternalServerError && errors.As(err, &appErr) {
		c.JSON(status, ErrorResponse{Error: appErr.Message})
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}

// mustIdentity extracts the identity set by the auth middleware; a missing
// identity means the route was wired without AuthMiddleware.
func mustIdentity(c *gin.Context) (domain.Identity, bool) {
	identity, found := middleware.GetIdentityFromContext(c)
	if !found {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return identity, false
	}
	return identity, true
}
