package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	types "github.com/yungbote/storefront-backend/internal/domain/store"
)

func money(d decimal.Decimal) string { return d.StringFixed(2) }

type productRequest struct {
	Title       *string       `json:"title" binding:"omitempty,max=255"`
	Slug        *string       `json:"slug" binding:"omitempty,max=255"`
	Description *string       `json:"description"`
	UnitPrice   *decimalField `json:"unit_price"`
	Inventory   *int          `json:"inventory" binding:"omitempty,min=0"`
	Collection  *uint         `json:"collection"`
}

type productResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Inventory    int       `json:"inventory"`
	UnitPrice    string    `json:"unit_price"`
	PriceWithTax string    `json:"price_with_tax"`
	Collection   uint      `json:"collection"`
	LastUpdate   time.Time `json:"last_update"`
}

func newProductResponse(p *types.Product, taxRate decimal.Decimal) productResponse {
	return productResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		Inventory:    p.Inventory,
		UnitPrice:    money(p.UnitPrice),
		PriceWithTax: money(p.PriceWithTax(taxRate)),
		Collection:   p.CollectionID,
		LastUpdate:   p.LastUpdate,
	}
}

type collectionRequest struct {
	Title *string `json:"title" binding:"omitempty,max=255"`
}

type collectionResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	ProductsCount int64  `json:"products_count"`
}

func newCollectionResponse(c *types.Collection) collectionResponse {
	return collectionResponse{ID: c.ID, Title: c.Title, ProductsCount: c.ProductsCount}
}

type reviewRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

type reviewResponse struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func newReviewResponse(r *types.Review) reviewResponse {
	return reviewResponse{ID: r.ID, Date: r.Date, Name: r.Name, Description: r.Description}
}

type simpleProductResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
}

type addCartItemRequest struct {
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

type cartItemResponse struct {
	ID         uint                  `json:"id"`
	Product    simpleProductResponse `json:"product"`
	Quantity   int                   `json:"quantity"`
	TotalPrice string                `json:"total_price"`
}

func newCartItemResponse(it *types.CartItem) cartItemResponse {
	out := cartItemResponse{
		ID:         it.ID,
		Quantity:   it.Quantity,
		TotalPrice: money(it.TotalPrice()),
	}
	if it.Product != nil {
		out.Product = simpleProductResponse{
			ID:        it.Product.ID,
			Title:     it.Product.Title,
			UnitPrice: money(it.Product.UnitPrice),
		}
	} else {
		out.Product = simpleProductResponse{ID: it.ProductID}
	}
	return out
}

type cartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []cartItemResponse `json:"items"`
	TotalPrice string             `json:"total_price"`
}

func newCartResponse(c *types.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, newCartItemResponse(it))
	}
	return cartResponse{ID: c.ID, Items: items, TotalPrice: money(c.TotalPrice())}
}
