package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

type CartHandler struct {
	log   *logger.Logger
	carts services.CartService
}

func NewCartHandler(log *logger.Logger, carts services.CartService) *CartHandler {
	return &CartHandler{
		log:   log.With("handler", "CartHandler"),
		carts: carts,
	}
}

// POST /store/carts/
// The request body is ignored.
func (h *CartHandler) Create(c *gin.Context, _ Params) {
	cart, err := h.carts.Create(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, newCartResponse(cart))
}

// GET /store/carts/:id/
func (h *CartHandler) Get(c *gin.Context, p Params) {
	id, err := parseCartID("cart.get", p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	cart, err := h.carts.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newCartResponse(cart))
}

// DELETE /store/carts/:id/
func (h *CartHandler) Delete(c *gin.Context, p Params) {
	id, err := parseCartID("cart.delete", p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := h.carts.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
