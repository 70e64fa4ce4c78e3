package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

func TestRespondErrorBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "field validation",
			err:    apierr.Invalid("op", "title", "This field is required."),
			status: http.StatusBadRequest,
			body:   `{"title":["This field is required."]}`,
		},
		{
			name:   "parse error",
			err:    apierr.New(apierr.CodeValidation, "op", "JSON parse error - unexpected EOF", nil),
			status: http.StatusBadRequest,
			body:   `{"detail":"JSON parse error - unexpected EOF"}`,
		},
		{
			name:   "not found",
			err:    apierr.NotFound("op"),
			status: http.StatusNotFound,
			body:   `{"detail":"Not found."}`,
		},
		{
			name:   "guard conflict",
			err:    apierr.Conflict("op", "Collection cannot be deleted because it includes one or more products."),
			status: http.StatusMethodNotAllowed,
			body:   `{"error":"Collection cannot be deleted because it includes one or more products."}`,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"detail":"A server error occurred."}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, nil, tc.err)

			require.Equal(t, tc.status, rec.Code)
			var got, want any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.NoError(t, json.Unmarshal([]byte(tc.body), &want))
			require.Equal(t, want, got)
		})
	}
}
