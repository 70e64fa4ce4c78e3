package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

type CollectionHandler struct {
	log         *logger.Logger
	collections services.CollectionService
}

func NewCollectionHandler(log *logger.Logger, collections services.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		log:         log.With("handler", "CollectionHandler"),
		collections: collections,
	}
}

// GET /store/collections/
func (h *CollectionHandler) List(c *gin.Context, _ Params) {
	rows, err := h.collections.List(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out := make([]collectionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, newCollectionResponse(row))
	}
	response.RespondOK(c, out)
}

// GET /store/collections/:id/
func (h *CollectionHandler) Get(c *gin.Context, p Params) {
	id, err := parseUintID("collection.get", p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	row, err := h.collections.Get(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newCollectionResponse(row))
}

// POST /store/collections/
func (h *CollectionHandler) Create(c *gin.Context, _ Params) {
	var req collectionRequest
	if err := bindJSON(c, "collection.create", &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	row, err := h.collections.Create(dbctx.Context{Ctx: c.Request.Context()}, services.CollectionInput{Title: req.Title})
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, newCollectionResponse(row))
}

// PUT|PATCH /store/collections/:id/
func (h *CollectionHandler) Update(c *gin.Context, p Params) {
	const op = "collection.update"
	id, err := parseUintID(op, p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var req collectionRequest
	if err := bindJSON(c, op, &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	partial := c.Request.Method == http.MethodPatch
	row, err := h.collections.Update(dbctx.Context{Ctx: c.Request.Context()}, id, services.CollectionInput{Title: req.Title}, partial)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newCollectionResponse(row))
}

// DELETE /store/collections/:id/
func (h *CollectionHandler) Delete(c *gin.Context, p Params) {
	id, err := parseUintID("collection.delete", p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := h.collections.Delete(dbctx.Context{Ctx: c.Request.Context()}, id); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
