package storefront

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// CartItemRepo scopes every read and write by cart id. Reads preload Product.
type CartItemRepo interface {
	Create(dbc dbctx.Context, it *types.CartItem) error
	ListByCartID(dbc dbctx.Context, cartID uuid.UUID) ([]*types.CartItem, error)
	GetByCartAndID(dbc dbctx.Context, cartID uuid.UUID, id uint) (*types.CartItem, error)
	GetByCartAndProduct(dbc dbctx.Context, cartID uuid.UUID, productID uint) (*types.CartItem, error)
	// IncrementQuantity adds delta unless the result would exceed max; it
	// reports 0 rows affected when the cap blocks the update.
	IncrementQuantity(dbc dbctx.Context, id uint, delta, max int) (int64, error)
	UpdateQuantity(dbc dbctx.Context, cartID uuid.UUID, id uint, quantity int) (int64, error)
	DeleteByCartAndID(dbc dbctx.Context, cartID uuid.UUID, id uint) (int64, error)
}

type cartItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartItemRepo(db *gorm.DB, baseLog *logger.Logger) CartItemRepo {
	return &cartItemRepo{db: db, log: baseLog.With("repo", "CartItemRepo")}
}

func (r *cartItemRepo) Create(dbc dbctx.Context, it *types.CartItem) error {
	return dbc.DB(r.db).Omit("Cart", "Product").Create(it).Error
}

func (r *cartItemRepo) ListByCartID(dbc dbctx.Context, cartID uuid.UUID) ([]*types.CartItem, error) {
	out := []*types.CartItem{}
	if cartID == uuid.Nil {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartItemRepo) first(dbc dbctx.Context, query string, args ...interface{}) (*types.CartItem, error) {
	var rows []*types.CartItem
	if err := dbc.DB(r.db).
		Preload("Product").
		Where(query, args...).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *cartItemRepo) GetByCartAndID(dbc dbctx.Context, cartID uuid.UUID, id uint) (*types.CartItem, error) {
	if cartID == uuid.Nil || id == 0 {
		return nil, nil
	}
	return r.first(dbc, "cart_id = ? AND id = ?", cartID, id)
}

func (r *cartItemRepo) GetByCartAndProduct(dbc dbctx.Context, cartID uuid.UUID, productID uint) (*types.CartItem, error) {
	if cartID == uuid.Nil || productID == 0 {
		return nil, nil
	}
	return r.first(dbc, "cart_id = ? AND product_id = ?", cartID, productID)
}

func (r *cartItemRepo) IncrementQuantity(dbc dbctx.Context, id uint, delta, max int) (int64, error) {
	if id == 0 || delta <= 0 || delta > max {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Model(&types.CartItem{}).
		Where("id = ? AND quantity <= ?", id, max-delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	return res.RowsAffected, res.Error
}

func (r *cartItemRepo) UpdateQuantity(dbc dbctx.Context, cartID uuid.UUID, id uint, quantity int) (int64, error) {
	if cartID == uuid.Nil || id == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Model(&types.CartItem{}).
		Where("cart_id = ? AND id = ?", cartID, id).
		UpdateColumn("quantity", quantity)
	return res.RowsAffected, res.Error
}

func (r *cartItemRepo) DeleteByCartAndID(dbc dbctx.Context, cartID uuid.UUID, id uint) (int64, error) {
	if cartID == uuid.Nil || id == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("cart_id = ? AND id = ?", cartID, id).
		Delete(&types.CartItem{})
	return res.RowsAffected, res.Error
}
