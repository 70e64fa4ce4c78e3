package storefront

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// ProductOrderings lists the accepted ordering keys and their SQL.
var ProductOrderings = map[string]string{
	"unit_price":   "unit_price ASC, id ASC",
	"-unit_price":  "unit_price DESC, id ASC",
	"last_update":  "last_update ASC, id ASC",
	"-last_update": "last_update DESC, id ASC",
}

type ProductFilter struct {
	CollectionID *uint
	PriceGT      *decimal.Decimal
	PriceLT      *decimal.Decimal
	Search       string
	// Ordering must be a key of ProductOrderings or empty.
	Ordering string
	Offset   int
	Limit    int
}

type ProductRepo interface {
	Create(dbc dbctx.Context, p *types.Product) error
	GetByID(dbc dbctx.Context, id uint) (*types.Product, error)
	List(dbc dbctx.Context, f ProductFilter) ([]*types.Product, int64, error)
	Exists(dbc dbctx.Context, id uint) (bool, error)
	UpdateFields(dbc dbctx.Context, id uint, updates map[string]interface{}) (int64, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) Create(dbc dbctx.Context, p *types.Product) error {
	return dbc.DB(r.db).Omit("Collection").Create(p).Error
}

func (r *productRepo) GetByID(dbc dbctx.Context, id uint) (*types.Product, error) {
	if id == 0 {
		return nil, nil
	}
	var row types.Product
	if err := dbc.DB(r.db).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *productRepo) List(dbc dbctx.Context, f ProductFilter) ([]*types.Product, int64, error) {
	q := dbc.DB(r.db).Model(&types.Product{})
	if f.CollectionID != nil {
		q = q.Where("collection_id = ?", *f.CollectionID)
	}
	if f.PriceGT != nil {
		q = q.Where("unit_price > ?", *f.PriceGT)
	}
	if f.PriceLT != nil {
		q = q.Where("unit_price < ?", *f.PriceLT)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(strings.ToLower(s)) + "%"
		q = q.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := ProductOrderings[f.Ordering]
	if !ok {
		order = "id ASC"
	}
	page := q.Session(&gorm.Session{}).Order(order)
	if f.Offset > 0 {
		page = page.Offset(f.Offset)
	}
	if f.Limit > 0 {
		page = page.Limit(f.Limit)
	}
	out := []*types.Product{}
	if err := page.Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *productRepo) Exists(dbc dbctx.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var n int64
	if err := dbc.DB(r.db).Model(&types.Product{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *productRepo) UpdateFields(dbc dbctx.Context, id uint, updates map[string]interface{}) (int64, error) {
	if id == 0 || len(updates) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).Model(&types.Product{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
