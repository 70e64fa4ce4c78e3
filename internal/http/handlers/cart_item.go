package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

// CartItemHandler serves items nested under a cart. The cart always comes
// from the path; a cart named in the body is ignored.
type CartItemHandler struct {
	log   *logger.Logger
	items services.CartItemService
}

func NewCartItemHandler(log *logger.Logger, items services.CartItemService) *CartItemHandler {
	return &CartItemHandler{
		log:   log.With("handler", "CartItemHandler"),
		items: items,
	}
}

func parseCartItemPath(op string, p Params) (uuid.UUID, uint, error) {
	cartID, err := parseCartID(op, p.ParentID)
	if err != nil {
		return uuid.Nil, 0, err
	}
	id, err := parseUintID(op, p.ID)
	if err != nil {
		return uuid.Nil, 0, err
	}
	return cartID, id, nil
}

// GET /store/carts/:id/items/
func (h *CartItemHandler) List(c *gin.Context, p Params) {
	cartID, err := parseCartID("cart_item.list", p.ParentID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	rows, err := h.items.List(dbctx.Context{Ctx: c.Request.Context()}, cartID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out := make([]cartItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, newCartItemResponse(row))
	}
	response.RespondOK(c, out)
}

// GET /store/carts/:id/items/:pk/
func (h *CartItemHandler) Get(c *gin.Context, p Params) {
	cartID, id, err := parseCartItemPath("cart_item.get", p)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	it, err := h.items.Get(dbctx.Context{Ctx: c.Request.Context()}, cartID, id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newCartItemResponse(it))
}

// POST /store/carts/:id/items/
func (h *CartItemHandler) Create(c *gin.Context, p Params) {
	const op = "cart_item.add"
	cartID, err := parseCartID(op, p.ParentID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var req addCartItemRequest
	if err := bindJSON(c, op, &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	it, err := h.items.Add(dbctx.Context{Ctx: c.Request.Context()}, cartID, services.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, newCartItemResponse(it))
}

// PATCH /store/carts/:id/items/:pk/
func (h *CartItemHandler) Update(c *gin.Context, p Params) {
	const op = "cart_item.update"
	cartID, id, err := parseCartItemPath(op, p)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var req updateCartItemRequest
	if err := bindJSON(c, op, &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	it, err := h.items.UpdateQuantity(dbctx.Context{Ctx: c.Request.Context()}, cartID, id, req.Quantity)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newCartItemResponse(it))
}

// DELETE /store/carts/:id/items/:pk/
func (h *CartItemHandler) Delete(c *gin.Context, p Params) {
	cartID, id, err := parseCartItemPath("cart_item.delete", p)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := h.items.Delete(dbctx.Context{Ctx: c.Request.Context()}, cartID, id); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
