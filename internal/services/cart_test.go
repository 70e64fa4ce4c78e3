package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

func TestCartLifecycle(t *testing.T) {
	s := newTestStore(t, 0)
	c := testutil.SeedCollection(t, s.ctx, s.db, "Office")
	pen := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Pen", "1.50")

	cart, err := s.carts.Create(s.dbc)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, cart.ID)
	require.Empty(t, cart.Items)
	require.True(t, cart.TotalPrice().IsZero())

	_, err = s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(4)})
	require.NoError(t, err)

	got, err := s.carts.Get(s.dbc, cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.True(t, got.TotalPrice().Equal(decimal.NewFromInt(6)), "total=%s", got.TotalPrice())

	require.NoError(t, s.carts.Delete(s.dbc, cart.ID))
	_, err = s.carts.Get(s.dbc, cart.ID)
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
	require.True(t, apierr.IsCode(s.carts.Delete(s.dbc, cart.ID), apierr.CodeNotFound))

	var left int64
	require.NoError(t, s.db.Model(&types.CartItem{}).Where("cart_id = ?", cart.ID).Count(&left).Error)
	require.Zero(t, left)
}

func TestCartItemAddMergesDuplicateProduct(t *testing.T) {
	s := newTestStore(t, 0)
	c := testutil.SeedCollection(t, s.ctx, s.db, "Office")
	pen := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Pen", "1.50")
	cart := testutil.SeedCart(t, s.ctx, s.db)

	first, err := s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(2)})
	require.NoError(t, err)
	second, err := s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(3)})
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 5, second.Quantity)
	require.NotNil(t, second.Product)
	require.True(t, second.TotalPrice().Equal(decimal.RequireFromString("7.5")))

	items, err := s.cartItems.List(s.dbc, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCartItemScopedToPathCart(t *testing.T) {
	s := newTestStore(t, 0)
	c := testutil.SeedCollection(t, s.ctx, s.db, "Office")
	pen := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Pen", "1.50")
	mine := testutil.SeedCart(t, s.ctx, s.db)
	other := testutil.SeedCart(t, s.ctx, s.db)

	it, err := s.cartItems.Add(s.dbc, mine.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(1)})
	require.NoError(t, err)
	require.Equal(t, mine.ID, it.CartID)

	_, err = s.cartItems.Get(s.dbc, other.ID, it.ID)
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
	_, err = s.cartItems.UpdateQuantity(s.dbc, other.ID, it.ID, ptr(7))
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
	require.True(t, apierr.IsCode(s.cartItems.Delete(s.dbc, other.ID, it.ID), apierr.CodeNotFound))

	_, err = s.cartItems.List(s.dbc, uuid.New())
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
}

func TestCartItemValidation(t *testing.T) {
	s := newTestStore(t, 0)
	c := testutil.SeedCollection(t, s.ctx, s.db, "Office")
	pen := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Pen", "1.50")
	cart := testutil.SeedCart(t, s.ctx, s.db)

	_, err := s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(0)})
	require.Equal(t, []string{MinValueMessage(1)}, validationFields(t, err)["quantity"])

	_, err = s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(uint(4040)), Quantity: ptr(1)})
	require.Equal(t, []string{MsgNoSuchProduct}, validationFields(t, err)["product_id"])

	_, err = s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{})
	fields := validationFields(t, err)
	require.Equal(t, []string{MsgRequired}, fields["product_id"])
	require.Equal(t, []string{MsgRequired}, fields["quantity"])

	it, err := s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(1)})
	require.NoError(t, err)

	_, err = s.cartItems.UpdateQuantity(s.dbc, cart.ID, it.ID, ptr(-2))
	require.Equal(t, []string{MinValueMessage(1)}, validationFields(t, err)["quantity"])

	got, err := s.cartItems.UpdateQuantity(s.dbc, cart.ID, it.ID, ptr(6))
	require.NoError(t, err)
	require.Equal(t, 6, got.Quantity)

	require.NoError(t, s.cartItems.Delete(s.dbc, cart.ID, it.ID))
	_, err = s.cartItems.Get(s.dbc, cart.ID, it.ID)
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
}

func TestCartItemQuantityCap(t *testing.T) {
	s := newTestStore(t, 0)
	c := testutil.SeedCollection(t, s.ctx, s.db, "Office")
	pen := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Pen", "1.50")
	cart := testutil.SeedCart(t, s.ctx, s.db)
	capMsg := []string{MaxValueMessage(MaxQuantity)}

	_, err := s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(MaxQuantity + 1)})
	require.Equal(t, capMsg, validationFields(t, err)["quantity"])

	it, err := s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(MaxQuantity - 1)})
	require.NoError(t, err)

	_, err = s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(2)})
	require.Equal(t, capMsg, validationFields(t, err)["quantity"])

	got, err := s.cartItems.Get(s.dbc, cart.ID, it.ID)
	require.NoError(t, err)
	require.Equal(t, MaxQuantity-1, got.Quantity)

	merged, err := s.cartItems.Add(s.dbc, cart.ID, AddCartItemInput{ProductID: ptr(pen.ID), Quantity: ptr(1)})
	require.NoError(t, err)
	require.Equal(t, it.ID, merged.ID)
	require.Equal(t, MaxQuantity, merged.Quantity)

	_, err = s.cartItems.UpdateQuantity(s.dbc, cart.ID, it.ID, ptr(MaxQuantity+1))
	require.Equal(t, capMsg, validationFields(t, err)["quantity"])

	items, err := s.cartItems.List(s.dbc, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, MaxQuantity, items[0].Quantity)
}
