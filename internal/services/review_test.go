package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

func TestReviewsScopedToProduct(t *testing.T) {
	s := newTestStore(t, 0)
	c := testutil.SeedCollection(t, s.ctx, s.db, "Games")
	a := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Chess", "30")
	b := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Go", "40")

	ra, err := s.reviews.Create(s.dbc, a.ID, ReviewInput{Name: ptr("ana"), Description: ptr("classic")})
	require.NoError(t, err)
	require.Equal(t, a.ID, ra.ProductID)
	rb, err := s.reviews.Create(s.dbc, b.ID, ReviewInput{Name: ptr("ben"), Description: ptr("deep")})
	require.NoError(t, err)

	list, err := s.reviews.List(s.dbc, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, ra.ID, list[0].ID)

	_, err = s.reviews.Get(s.dbc, a.ID, rb.ID)
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
	require.True(t, apierr.IsCode(s.reviews.Delete(s.dbc, a.ID, rb.ID), apierr.CodeNotFound))

	_, err = s.reviews.List(s.dbc, 9999)
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
}

func TestReviewValidationAndUpdate(t *testing.T) {
	s := newTestStore(t, 0)
	c := testutil.SeedCollection(t, s.ctx, s.db, "Games")
	p := testutil.SeedProduct(t, s.ctx, s.db, c.ID, "Chess", "30")

	_, err := s.reviews.Create(s.dbc, p.ID, ReviewInput{Name: ptr("")})
	fields := validationFields(t, err)
	require.Equal(t, []string{MsgBlank}, fields["name"])
	require.Equal(t, []string{MsgRequired}, fields["description"])

	rv, err := s.reviews.Create(s.dbc, p.ID, ReviewInput{Name: ptr("ana"), Description: ptr("ok")})
	require.NoError(t, err)

	got, err := s.reviews.Update(s.dbc, p.ID, rv.ID, ReviewInput{Description: ptr("great")}, true)
	require.NoError(t, err)
	require.Equal(t, "ana", got.Name)
	require.Equal(t, "great", got.Description)

	require.NoError(t, s.reviews.Delete(s.dbc, p.ID, rv.ID))
	_, err = s.reviews.Get(s.dbc, p.ID, rv.ID)
	require.True(t, apierr.IsCode(err, apierr.CodeNotFound))
}
