package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/data/repos/storefront"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type CollectionRepo = storefront.CollectionRepo
type ProductRepo = storefront.ProductRepo
type ProductFilter = storefront.ProductFilter
type ReviewRepo = storefront.ReviewRepo
type CartRepo = storefront.CartRepo
type CartItemRepo = storefront.CartItemRepo

func NewCollectionRepo(db *gorm.DB, baseLog *logger.Logger) CollectionRepo {
	return storefront.NewCollectionRepo(db, baseLog)
}
func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return storefront.NewProductRepo(db, baseLog)
}
func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return storefront.NewReviewRepo(db, baseLog)
}
func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return storefront.NewCartRepo(db, baseLog)
}
func NewCartItemRepo(db *gorm.DB, baseLog *logger.Logger) CartItemRepo {
	return storefront.NewCartItemRepo(db, baseLog)
}
