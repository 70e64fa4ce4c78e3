package storefront

import (
	"context"
	"testing"

	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

func TestReviewRepoScopedByProduct(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewReviewRepo(db, testutil.Logger(t))

	c := testutil.SeedCollection(t, ctx, tx, "Books")
	pa := testutil.SeedProduct(t, ctx, tx, c.ID, "Novel", "10")
	pb := testutil.SeedProduct(t, ctx, tx, c.ID, "Atlas", "30")

	ra := &types.Review{ProductID: pa.ID, Name: "ana", Description: "great"}
	if err := repo.Create(dbc, ra); err != nil {
		t.Fatalf("Create: %v", err)
	}
	rb := testutil.SeedReview(t, ctx, tx, pb.ID, "bo")

	rows, err := repo.ListByProductID(dbc, pa.ID)
	if err != nil {
		t.Fatalf("ListByProductID: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != ra.ID {
		t.Fatalf("ListByProductID: expected only product A's review, got %+v", rows)
	}
	if rows[0].Date.IsZero() {
		t.Fatalf("ListByProductID: date not set")
	}

	if got, err := repo.GetByProductAndID(dbc, pa.ID, rb.ID); err != nil || got != nil {
		t.Fatalf("GetByProductAndID(cross product): got=%v err=%v", got, err)
	}
	if n, err := repo.UpdateFields(dbc, pa.ID, rb.ID, map[string]interface{}{"name": "x"}); err != nil || n != 0 {
		t.Fatalf("UpdateFields(cross product): n=%d err=%v", n, err)
	}
	if n, err := repo.DeleteByProductAndID(dbc, pa.ID, rb.ID); err != nil || n != 0 {
		t.Fatalf("DeleteByProductAndID(cross product): n=%d err=%v", n, err)
	}

	if n, err := repo.UpdateFields(dbc, pb.ID, rb.ID, map[string]interface{}{"name": "bob"}); err != nil || n != 1 {
		t.Fatalf("UpdateFields: n=%d err=%v", n, err)
	}
	got, err := repo.GetByProductAndID(dbc, pb.ID, rb.ID)
	if err != nil || got == nil || got.Name != "bob" {
		t.Fatalf("GetByProductAndID: got=%+v err=%v", got, err)
	}
	if n, err := repo.DeleteByProductAndID(dbc, pb.ID, rb.ID); err != nil || n != 1 {
		t.Fatalf("DeleteByProductAndID: n=%d err=%v", n, err)
	}
}
