package storefront

import (
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type CollectionRepo interface {
	Create(dbc dbctx.Context, c *types.Collection) error
	// GetByID and List annotate each row with ProductsCount.
	GetByID(dbc dbctx.Context, id uint) (*types.Collection, error)
	List(dbc dbctx.Context) ([]*types.Collection, error)
	Exists(dbc dbctx.Context, id uint) (bool, error)
	UpdateFields(dbc dbctx.Context, id uint, updates map[string]interface{}) (int64, error)
}

type collectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollectionRepo(db *gorm.DB, baseLog *logger.Logger) CollectionRepo {
	return &collectionRepo{db: db, log: baseLog.With("repo", "CollectionRepo")}
}

func (r *collectionRepo) Create(dbc dbctx.Context, c *types.Collection) error {
	return dbc.DB(r.db).Create(c).Error
}

func (r *collectionRepo) annotated(dbc dbctx.Context) *gorm.DB {
	return dbc.DB(r.db).
		Model(&types.Collection{}).
		Select("collection.id, collection.title, COUNT(product.id) AS products_count").
		Joins("LEFT JOIN product ON product.collection_id = collection.id").
		Group("collection.id, collection.title")
}

func (r *collectionRepo) GetByID(dbc dbctx.Context, id uint) (*types.Collection, error) {
	if id == 0 {
		return nil, nil
	}
	var rows []*types.Collection
	if err := r.annotated(dbc).Where("collection.id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *collectionRepo) List(dbc dbctx.Context) ([]*types.Collection, error) {
	out := []*types.Collection{}
	if err := r.annotated(dbc).Order("collection.id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *collectionRepo) Exists(dbc dbctx.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var n int64
	if err := dbc.DB(r.db).Model(&types.Collection{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *collectionRepo) UpdateFields(dbc dbctx.Context, id uint, updates map[string]interface{}) (int64, error) {
	if id == 0 || len(updates) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).Model(&types.Collection{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}
