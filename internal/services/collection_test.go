package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

func TestCollectionProductsCount(t *testing.T) {
	s := newTestStore(t, 0)

	c, err := s.collections.Create(s.dbc, CollectionInput{Title: ptr("Snacks")})
	require.NoError(t, err)
	require.Zero(t, c.ProductsCount)

	for _, title := range []string{"Chips", "Nuts", "Pretzels"} {
		testutil.SeedProduct(t, s.ctx, s.db, c.ID, title, "3")
	}
	other := testutil.SeedCollection(t, s.ctx, s.db, "Drinks")
	testutil.SeedProduct(t, s.ctx, s.db, other.ID, "Soda", "2")

	got, err := s.collections.Get(s.dbc, c.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, got.ProductsCount)

	all, err := s.collections.List(s.dbc)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, row := range all {
		switch row.ID {
		case c.ID:
			require.EqualValues(t, 3, row.ProductsCount)
		case other.ID:
			require.EqualValues(t, 1, row.ProductsCount)
		}
	}
}

func TestCollectionCreateUpdateValidation(t *testing.T) {
	s := newTestStore(t, 0)

	_, err := s.collections.Create(s.dbc, CollectionInput{})
	require.Equal(t, []string{MsgRequired}, validationFields(t, err)["title"])

	c, err := s.collections.Create(s.dbc, CollectionInput{Title: ptr("Old")})
	require.NoError(t, err)

	_, err = s.collections.Update(s.dbc, c.ID, CollectionInput{}, false)
	require.Equal(t, []string{MsgRequired}, validationFields(t, err)["title"])

	got, err := s.collections.Update(s.dbc, c.ID, CollectionInput{}, true)
	require.NoError(t, err)
	require.Equal(t, "Old", got.Title)

	got, err = s.collections.Update(s.dbc, c.ID, CollectionInput{Title: ptr("New")}, true)
	require.NoError(t, err)
	require.Equal(t, "New", got.Title)
}

func TestCollectionDeleteGuard(t *testing.T) {
	s := newTestStore(t, 0)
	full := testutil.SeedCollection(t, s.ctx, s.db, "Full")
	empty := testutil.SeedCollection(t, s.ctx, s.db, "Empty")
	testutil.SeedProduct(t, s.ctx, s.db, full.ID, "Thing", "1")

	err := s.collections.Delete(s.dbc, full.ID)
	require.True(t, apierr.IsCode(err, apierr.CodeConflict), "err=%v", err)
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, MsgCollectionHasProducts, apiErr.Message)

	still, err := s.collections.Get(s.dbc, full.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, still.ProductsCount)

	require.NoError(t, s.collections.Delete(s.dbc, empty.ID))
	_, err = s.collections.Get(s.dbc, empty.ID)
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
}
