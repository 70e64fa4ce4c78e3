package storefront

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

func TestProductRepoCreateGet(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProductRepo(db, testutil.Logger(t))

	c := testutil.SeedCollection(t, ctx, tx, "Toys")
	p := &types.Product{
		Title:        "Kite",
		Slug:         "kite",
		Description:  "flies",
		UnitPrice:    decimal.RequireFromString("19.90"),
		Inventory:    3,
		CollectionID: c.ID,
	}
	if err := repo.Create(dbc, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(dbc, p.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got.Title != "Kite" || got.Description != "flies" || got.CollectionID != c.ID {
		t.Fatalf("GetByID: unexpected row %+v", got)
	}
	if !got.UnitPrice.Equal(decimal.RequireFromString("19.9")) {
		t.Fatalf("GetByID: unit_price=%s", got.UnitPrice)
	}
	if got.LastUpdate.IsZero() {
		t.Fatalf("GetByID: last_update not set")
	}

	if got, err := repo.GetByID(dbc, p.ID+100); err != nil || got != nil {
		t.Fatalf("GetByID(missing): got=%v err=%v", got, err)
	}

	n, err := repo.UpdateFields(dbc, p.ID, map[string]interface{}{"unit_price": decimal.RequireFromString("25")})
	if err != nil || n != 1 {
		t.Fatalf("UpdateFields: n=%d err=%v", n, err)
	}
	got, _ = repo.GetByID(dbc, p.ID)
	if !got.UnitPrice.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("after UpdateFields: unit_price=%s", got.UnitPrice)
	}
}

func TestProductRepoCreateRejectsMissingCollection(t *testing.T) {
	db := testutil.DB(t)
	repo := NewProductRepo(db, testutil.Logger(t))

	err := repo.Create(dbctx.Context{Ctx: context.Background()}, &types.Product{
		Title:        "Orphan",
		UnitPrice:    decimal.NewFromInt(5),
		CollectionID: 404,
	})
	if err == nil {
		t.Fatalf("Create: expected foreign key error")
	}
}

func TestProductRepoList(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProductRepo(db, testutil.Logger(t))

	a := testutil.SeedCollection(t, ctx, tx, "A")
	b := testutil.SeedCollection(t, ctx, tx, "B")
	cheap := testutil.SeedProduct(t, ctx, tx, a.ID, "Bread Roll", "2.00")
	mid := testutil.SeedProduct(t, ctx, tx, a.ID, "Coffee Beans", "15.00")
	dear := testutil.SeedProduct(t, ctx, tx, b.ID, "Espresso Machine", "450.00")

	ids := func(rows []*types.Product) []uint {
		out := make([]uint, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.ID)
		}
		return out
	}
	equal := func(got, want []uint) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	}

	gt := decimal.NewFromInt(2)
	lt := decimal.NewFromInt(500)
	cases := []struct {
		name      string
		filter    ProductFilter
		wantIDs   []uint
		wantTotal int64
	}{
		{"all", ProductFilter{}, []uint{cheap.ID, mid.ID, dear.ID}, 3},
		{"collection", ProductFilter{CollectionID: &a.ID}, []uint{cheap.ID, mid.ID}, 2},
		{"price window", ProductFilter{PriceGT: &gt, PriceLT: &lt}, []uint{mid.ID, dear.ID}, 2},
		{"search title case-insensitive", ProductFilter{Search: "COFFEE"}, []uint{mid.ID}, 1},
		{"search description", ProductFilter{Search: "about espresso"}, []uint{dear.ID}, 1},
		{"search wildcard is literal", ProductFilter{Search: "%"}, []uint{}, 0},
		{"ordering desc", ProductFilter{Ordering: "-unit_price"}, []uint{dear.ID, mid.ID, cheap.ID}, 3},
		{"page", ProductFilter{Ordering: "unit_price", Offset: 1, Limit: 1}, []uint{mid.ID}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, total, err := repo.List(dbc, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if total != tc.wantTotal {
				t.Fatalf("total: want %d, got %d", tc.wantTotal, total)
			}
			if got := ids(rows); !equal(got, tc.wantIDs) {
				t.Fatalf("ids: want %v, got %v", tc.wantIDs, got)
			}
		})
	}
}
