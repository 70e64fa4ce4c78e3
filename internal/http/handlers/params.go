package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

// Params carries the path identifiers of a route. ParentID is set on nested
// routes only, e.g. the product of /store/products/:id/reviews/:pk/.
type Params struct {
	ParentID string
	ID       string
}

type HandlerFunc func(c *gin.Context, p Params)

// parseUintID treats anything that is not a positive integer as an unknown row.
func parseUintID(op, raw string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, apierr.NotFound(op)
	}
	return uint(n), nil
}

func parseCartID(op, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apierr.NotFound(op)
	}
	return id, nil
}
