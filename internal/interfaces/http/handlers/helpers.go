package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	"github.com/giftex-inc/giftex/internal/shared/errors"
)

// actorRole returns the role placed in the context by the auth middleware.
func actorRole(c *gin.Context) authorization.UserRole {
	return authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
}

// parseDate parses an optional YYYY-MM-DD value from a request body.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid date, expected YYYY-MM-DD")
	}
	return &t, nil
}
