package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/data/repos"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type Repos struct {
	Collection repos.CollectionRepo
	Product    repos.ProductRepo
	Review     repos.ReviewRepo
	Cart       repos.CartRepo
	CartItem   repos.CartItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Collection: repos.NewCollectionRepo(db, log),
		Product:    repos.NewProductRepo(db, log),
		Review:     repos.NewReviewRepo(db, log),
		Cart:       repos.NewCartRepo(db, log),
		CartItem:   repos.NewCartItemRepo(db, log),
	}
}
