package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/ctxutil"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

const (
	MsgNotFound    = "Not found."
	MsgServerError = "A server error occurred."
)

// RespondError maps err onto the storefront's error bodies:
// validation answers a field map, guard conflicts answer {"error": msg},
// everything else answers {"detail": msg}.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierr.Internal("", err)
	}
	status := apierr.Status(apiErr)

	switch apiErr.Code {
	case apierr.CodeValidation:
		if len(apiErr.Fields) > 0 {
			c.AbortWithStatusJSON(status, apiErr.Fields)
			return
		}
		RespondDetail(c, status, apiErr.Message)
	case apierr.CodeNotFound:
		msg := apiErr.Message
		if msg == "" {
			msg = MsgNotFound
		}
		RespondDetail(c, status, msg)
	case apierr.CodeConflict:
		c.AbortWithStatusJSON(status, gin.H{"error": apiErr.Message})
	default:
		if log != nil {
			fields := append([]interface{}{"op", apiErr.Op, "error", err}, ctxutil.LogFields(c.Request.Context())...)
			log.Error("request failed", fields...)
		}
		_ = c.Error(err)
		RespondDetail(c, http.StatusInternalServerError, MsgServerError)
	}
}
