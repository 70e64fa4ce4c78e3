package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/yungbote/storefront-backend/internal/http/response"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

const msgEnterNumber = "Enter a number."

type ProductHandler struct {
	log      *logger.Logger
	products services.ProductService
	taxRate  decimal.Decimal
}

func NewProductHandler(log *logger.Logger, products services.ProductService, taxRate decimal.Decimal) *ProductHandler {
	return &ProductHandler{
		log:      log.With("handler", "ProductHandler"),
		products: products,
		taxRate:  taxRate,
	}
}

func (h *ProductHandler) dbc(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}

func parseProductQuery(c *gin.Context) (services.ProductQuery, error) {
	const op = "product.list"
	q := services.ProductQuery{
		Search:   strings.TrimSpace(c.Query("search")),
		Ordering: strings.TrimSpace(c.Query("ordering")),
	}
	fields := map[string][]string{}

	if raw := strings.TrimSpace(c.Query("collection_id")); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			fields["collection_id"] = []string{msgEnterNumber}
		} else {
			id := uint(n)
			q.CollectionID = &id
		}
	}
	for _, key := range []string{"unit_price__gt", "unit_price__lt"} {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fields[key] = []string{msgEnterNumber}
			continue
		}
		if key == "unit_price__gt" {
			q.PriceGT = &d
		} else {
			q.PriceLT = &d
		}
	}
	if len(fields) > 0 {
		return q, apierr.Validation(op, fields)
	}

	if raw := strings.TrimSpace(c.Query(pageParam)); raw != "" && raw != "last" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, apierr.New(apierr.CodeNotFound, op, services.MsgInvalidPage, nil)
		}
		q.Page = n
	}
	return q, nil
}

// GET /store/products/
func (h *ProductHandler) List(c *gin.Context, _ Params) {
	q, err := parseProductQuery(c)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if c.Query(pageParam) == "last" {
		// "last" needs the count before the page number is known.
		first, err := h.products.List(h.dbc(c), q)
		if err != nil {
			response.RespondError(c, h.log, err)
			return
		}
		q.Page = int((first.Count + int64(first.PageSize) - 1) / int64(first.PageSize))
	}
	page, err := h.products.List(h.dbc(c), q)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	results := make([]productResponse, 0, len(page.Items))
	for _, p := range page.Items {
		results = append(results, newProductResponse(p, h.taxRate))
	}
	env := pageEnvelope{Count: page.Count, Results: results}
	if page.HasNext {
		env.Next = pageLink(c, page.Page+1)
	}
	if page.HasPrev {
		env.Previous = pageLink(c, page.Page-1)
	}
	response.RespondOK(c, env)
}

// GET /store/products/:id/
func (h *ProductHandler) Get(c *gin.Context, p Params) {
	id, err := parseUintID("product.get", p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	prod, err := h.products.Get(h.dbc(c), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newProductResponse(prod, h.taxRate))
}

func (req productRequest) input() services.ProductInput {
	return services.ProductInput{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice.value(),
		Inventory:    req.Inventory,
		CollectionID: req.Collection,
	}
}

// POST /store/products/
func (h *ProductHandler) Create(c *gin.Context, _ Params) {
	var req productRequest
	if err := bindJSON(c, "product.create", &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	prod, err := h.products.Create(h.dbc(c), req.input())
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, newProductResponse(prod, h.taxRate))
}

// PUT|PATCH /store/products/:id/
func (h *ProductHandler) Update(c *gin.Context, p Params) {
	const op = "product.update"
	id, err := parseUintID(op, p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var req productRequest
	if err := bindJSON(c, op, &req); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	partial := c.Request.Method == http.MethodPatch
	prod, err := h.products.Update(h.dbc(c), id, req.input(), partial)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, newProductResponse(prod, h.taxRate))
}

// DELETE /store/products/:id/
func (h *ProductHandler) Delete(c *gin.Context, p Params) {
	id, err := parseUintID("product.delete", p.ID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := h.products.Delete(h.dbc(c), id); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
