package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

// ReviewHandler serves reviews nested under a product. The product always
// comes from the path.
type ReviewHandler struct {
	log     *logger.Logger
	reviews services.ReviewService
}

func NewReviewHandler(log *logger.Logger, reviews services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		log:     log.With("handler", "ReviewHandler"),
		reviews: reviews,
	}
}

// GET /store/products/:id/reviews/
func (h *ReviewHandler) List(c *gin.Context, p Params) {
	productID, err := parseUintID("review.list", p.ParentID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	rows, err := h.reviews.List(dbctx.Context{Ctx: c.Request.Context()}, productID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out := make([]reviewResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, newReviewResponse(row))
	}
	response.RespondOK(c, out)
}

func parseReviewPath(op string, p Params) (productID, id uint, err error) {
	if productID, err = parseUintID(op, p.ParentID); err != nil {
		return 0, 0, err
	}
	if id, err = parseUintID(op, p.ID); err != nil {
		return 0, 0, err
	}
	return productID, id, nil
}

// GET /store/products/:id/reviews/:pk/
func (h *ReviewHandler) Get(c *gin.Context, p Params) {
	productID, id, err := parseReviewPath("review.get", p)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	row, err := h.reviews.Get(dbctx.Context{Ctx: c.Request.Context()}, productID, id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newReviewResponse(row))
}

// POST /store/products/:id/reviews/
func (h *ReviewHandler) Create(c *gin.Context, p Params) {
	const op = "review.create"
	productID, err := parseUintID(op, p.ParentID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var req reviewRequest
	if err := bindJSON(c, op, &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	row, err := h.reviews.Create(dbctx.Context{Ctx: c.Request.Context()}, productID, services.ReviewInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, newReviewResponse(row))
}

// PUT|PATCH /store/products/:id/reviews/:pk/
func (h *ReviewHandler) Update(c *gin.Context, p Params) {
	const op = "review.update"
	productID, id, err := parseReviewPath(op, p)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var req reviewRequest
	if err := bindJSON(c, op, &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	partial := c.Request.Method == http.MethodPatch
	row, err := h.reviews.Update(dbctx.Context{Ctx: c.Request.Context()}, productID, id, services.ReviewInput{
		Name:        req.Name,
		Description: req.Description,
	}, partial)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newReviewResponse(row))
}

// DELETE /store/products/:id/reviews/:pk/
func (h *ReviewHandler) Delete(c *gin.Context, p Params) {
	productID, id, err := parseReviewPath("review.delete", p)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := h.reviews.Delete(dbctx.Context{Ctx: c.Request.Context()}, productID, id); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
