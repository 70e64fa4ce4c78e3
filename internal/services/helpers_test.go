package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/data/aggregates"
	"github.com/yungbote/storefront-backend/internal/data/repos"
	"github.com/yungbote/storefront-backend/internal/data/repos/testutil"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

type testStore struct {
	db          *gorm.DB
	ctx         context.Context
	dbc         dbctx.Context
	products    ProductService
	collections CollectionService
	reviews     ReviewService
	carts       CartService
	cartItems   CartItemService
}

// newTestStore wires every service against a private sqlite database.
// Services open their own transactions, so no outer tx is held here.
func newTestStore(t *testing.T, pageSize int) *testStore {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := aggregates.NewGormTxRunner(db)

	productRepo := repos.NewProductRepo(db, log)
	collectionRepo := repos.NewCollectionRepo(db, log)
	reviewRepo := repos.NewReviewRepo(db, log)
	cartRepo := repos.NewCartRepo(db, log)
	cartItemRepo := repos.NewCartItemRepo(db, log)

	ctx := context.Background()
	return &testStore{
		db:          db,
		ctx:         ctx,
		dbc:         dbctx.Context{Ctx: ctx},
		products:    NewProductService(log, tx, productRepo, collectionRepo, pageSize),
		collections: NewCollectionService(log, tx, collectionRepo),
		reviews:     NewReviewService(log, tx, productRepo, reviewRepo),
		carts:       NewCartService(log, tx, cartRepo),
		cartItems:   NewCartItemService(log, tx, cartRepo, cartItemRepo, productRepo),
	}
}

func ptr[T any](v T) *T { return &v }
