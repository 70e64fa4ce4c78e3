package storefront

import (
	"context"
	"testing"

	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

func TestCollectionRepoProductsCount(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCollectionRepo(db, testutil.Logger(t))

	full := testutil.SeedCollection(t, ctx, tx, "Beauty")
	empty := &types.Collection{Title: "Grocery"}
	if err := repo.Create(dbc, empty); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if empty.ID == 0 {
		t.Fatalf("Create: expected id to be assigned")
	}
	testutil.SeedProduct(t, ctx, tx, full.ID, "Lipstick", "12.50")
	testutil.SeedProduct(t, ctx, tx, full.ID, "Mascara", "9.99")

	rows, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("List: want 2 rows, got %d", len(rows))
	}
	counts := map[uint]int64{}
	for _, c := range rows {
		counts[c.ID] = c.ProductsCount
	}
	if counts[full.ID] != 2 || counts[empty.ID] != 0 {
		t.Fatalf("List: unexpected counts %v", counts)
	}

	got, err := repo.GetByID(dbc, full.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got.Title != "Beauty" || got.ProductsCount != 2 {
		t.Fatalf("GetByID: unexpected row %+v", got)
	}

	if got, err := repo.GetByID(dbc, 9999); err != nil || got != nil {
		t.Fatalf("GetByID(missing): got=%v err=%v", got, err)
	}
	if ok, err := repo.Exists(dbc, empty.ID); err != nil || !ok {
		t.Fatalf("Exists: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Exists(dbc, 9999); err != nil || ok {
		t.Fatalf("Exists(missing): ok=%v err=%v", ok, err)
	}

	n, err := repo.UpdateFields(dbc, empty.ID, map[string]interface{}{"title": "Pantry"})
	if err != nil || n != 1 {
		t.Fatalf("UpdateFields: n=%d err=%v", n, err)
	}
	if got, _ := repo.GetByID(dbc, empty.ID); got == nil || got.Title != "Pantry" {
		t.Fatalf("after UpdateFields: %+v", got)
	}
}
