package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/domain/store"
)

func SeedCollection(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *store.Collection {
	tb.Helper()
	c := &store.Collection{Title: title}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed collection: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, collectionID uint, title, price string) *store.Product {
	tb.Helper()
	p := &store.Product{
		Title:        title,
		Slug:         title,
		Description:  "about " + title,
		UnitPrice:    decimal.RequireFromString(price),
		Inventory:    10,
		CollectionID: collectionID,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedReview(tb testing.TB, ctx context.Context, tx *gorm.DB, productID uint, name string) *store.Review {
	tb.Helper()
	r := &store.Review{ProductID: productID, Name: name, Description: "review by " + name}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed review: %v", err)
	}
	return r
}

func SeedCart(tb testing.TB, ctx context.Context, tx *gorm.DB) *store.Cart {
	tb.Helper()
	c := &store.Cart{}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed cart: %v", err)
	}
	return c
}

func SeedCartItem(tb testing.TB, ctx context.Context, tx *gorm.DB, cartID uuid.UUID, productID uint, qty int) *store.CartItem {
	tb.Helper()
	it := &store.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed cart item: %v", err)
	}
	return it
}

// SeedOrderItem places a one-line order referencing productID.
func SeedOrderItem(tb testing.TB, ctx context.Context, tx *gorm.DB, productID uint) *store.OrderItem {
	tb.Helper()
	o := &store.Order{PaymentStatus: store.PaymentStatusPending}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	it := &store.OrderItem{OrderID: o.ID, ProductID: productID, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed order item: %v", err)
	}
	return it
}
