package storefront

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type CartRepo interface {
	Create(dbc dbctx.Context, c *types.Cart) error
	// GetWithItems loads the cart, its items and each item's product in one query per relation.
	GetWithItems(dbc dbctx.Context, id uuid.UUID) (*types.Cart, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	DeleteByID(dbc dbctx.Context, id uuid.UUID) (int64, error)
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return &cartRepo{db: db, log: baseLog.With("repo", "CartRepo")}
}

func (r *cartRepo) Create(dbc dbctx.Context, c *types.Cart) error {
	return dbc.DB(r.db).Omit("Items").Create(c).Error
}

func (r *cartRepo) GetWithItems(dbc dbctx.Context, id uuid.UUID) (*types.Cart, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Cart
	if err := dbc.DB(r.db).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("Items.Product").
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	if row.Items == nil {
		row.Items = []*types.CartItem{}
	}
	return &row, nil
}

func (r *cartRepo) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	var n int64
	if err := dbc.DB(r.db).Model(&types.Cart{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteByID removes the cart's items before the cart so it does not depend on
// the driver enforcing ON DELETE CASCADE.
func (r *cartRepo) DeleteByID(dbc dbctx.Context, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, nil
	}
	t := dbc.DB(r.db)
	if err := t.Where("cart_id = ?", id).Delete(&types.CartItem{}).Error; err != nil {
		return 0, err
	}
	res := t.Where("id = ?", id).Delete(&types.Cart{})
	return res.RowsAffected, res.Error
}
