package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/data/aggregates"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
	"github.com/yungbote/storefront-backend/internal/services"
)

type Services struct {
	Tx         aggregates.TxRunner
	Product    services.ProductService
	Collection services.CollectionService
	Review     services.ReviewService
	Cart       services.CartService
	CartItem   services.CartItemService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	tx := aggregates.NewGormTxRunner(db)
	return Services{
		Tx:         tx,
		Product:    services.NewProductService(log, tx, r.Product, r.Collection, cfg.PageSize),
		Collection: services.NewCollectionService(log, tx, r.Collection),
		Review:     services.NewReviewService(log, tx, r.Product, r.Review),
		Cart:       services.NewCartService(log, tx, r.Cart),
		CartItem:   services.NewCartItemService(log, tx, r.Cart, r.CartItem, r.Product),
	}
}
