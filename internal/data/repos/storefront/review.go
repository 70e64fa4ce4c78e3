package storefront

import (
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// ReviewRepo scopes every read and write by product id.
type ReviewRepo interface {
	Create(dbc dbctx.Context, rv *types.Review) error
	ListByProductID(dbc dbctx.Context, productID uint) ([]*types.Review, error)
	GetByProductAndID(dbc dbctx.Context, productID, id uint) (*types.Review, error)
	UpdateFields(dbc dbctx.Context, productID, id uint, updates map[string]interface{}) (int64, error)
	DeleteByProductAndID(dbc dbctx.Context, productID, id uint) (int64, error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{db: db, log: baseLog.With("repo", "ReviewRepo")}
}

func (r *reviewRepo) Create(dbc dbctx.Context, rv *types.Review) error {
	return dbc.DB(r.db).Omit("Product").Create(rv).Error
}

func (r *reviewRepo) ListByProductID(dbc dbctx.Context, productID uint) ([]*types.Review, error) {
	out := []*types.Review{}
	if productID == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reviewRepo) GetByProductAndID(dbc dbctx.Context, productID, id uint) (*types.Review, error) {
	if productID == 0 || id == 0 {
		return nil, nil
	}
	var row types.Review
	if err := dbc.DB(r.db).
		Where("product_id = ? AND id = ?", productID, id).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *reviewRepo) UpdateFields(dbc dbctx.Context, productID, id uint, updates map[string]interface{}) (int64, error) {
	if productID == 0 || id == 0 || len(updates) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Model(&types.Review{}).
		Where("product_id = ? AND id = ?", productID, id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *reviewRepo) DeleteByProductAndID(dbc dbctx.Context, productID, id uint) (int64, error) {
	if productID == 0 || id == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("product_id = ? AND id = ?", productID, id).
		Delete(&types.Review{})
	return res.RowsAffected, res.Error
}
