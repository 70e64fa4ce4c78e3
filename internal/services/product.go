package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yungbote/storefront-backend/internal/data/aggregates"
	"github.com/yungbote/storefront-backend/internal/data/repos"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

const (
	DefaultPageSize = 10

	MsgInvalidPage        = "Invalid page."
	MsgProductHasOrders   = "Product cannot be deleted because it is associated with an order item."
	MsgInvalidCollectionF = "Invalid pk \"%d\" - object does not exist."
)

// ProductInput carries writable product fields. Nil means "not provided".
type ProductInput struct {
	Title        *string
	Slug         *string
	Description  *string
	UnitPrice    *decimal.Decimal
	Inventory    *int
	CollectionID *uint
}

type ProductQuery struct {
	CollectionID *uint
	PriceGT      *decimal.Decimal
	PriceLT      *decimal.Decimal
	Search       string
	Ordering     string
	// Page is 1-based; zero means the first page.
	Page int
}

type ProductPage struct {
	Items    []*types.Product
	Count    int64
	Page     int
	PageSize int
	HasNext  bool
	HasPrev  bool
}

type ProductService interface {
	List(dbc dbctx.Context, q ProductQuery) (*ProductPage, error)
	Get(dbc dbctx.Context, id uint) (*types.Product, error)
	Create(dbc dbctx.Context, in ProductInput) (*types.Product, error)
	Update(dbc dbctx.Context, id uint, in ProductInput, partial bool) (*types.Product, error)
	Delete(dbc dbctx.Context, id uint) error
}

type productService struct {
	log         *logger.Logger
	tx          aggregates.TxRunner
	products    repos.ProductRepo
	collections repos.CollectionRepo
	pageSize    int
	guard       aggregates.ReferenceGuard
}

func NewProductService(log *logger.Logger, tx aggregates.TxRunner, products repos.ProductRepo, collections repos.CollectionRepo, pageSize int) ProductService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &productService{
		log:         log.With("service", "ProductService"),
		tx:          tx,
		products:    products,
		collections: collections,
		pageSize:    pageSize,
		guard: aggregates.ReferenceGuard{
			Op:        "product.delete",
			Model:     &types.Product{},
			RefTable:  types.OrderItem{}.TableName(),
			RefColumn: "product_id",
			Message:   MsgProductHasOrders,
		},
	}
}

func (s *productService) List(dbc dbctx.Context, q ProductQuery) (*ProductPage, error) {
	const op = "product.list"
	page := q.Page
	if page <= 0 {
		page = 1
	}
	filter := repos.ProductFilter{
		CollectionID: q.CollectionID,
		PriceGT:      q.PriceGT,
		PriceLT:      q.PriceLT,
		Search:       q.Search,
		Ordering:     q.Ordering,
		Offset:       (page - 1) * s.pageSize,
		Limit:        s.pageSize,
	}
	rows, total, err := s.products.List(dbc, filter)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	lastPage := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		return nil, apierr.New(apierr.CodeNotFound, op, MsgInvalidPage, nil)
	}
	return &ProductPage{
		Items:    rows,
		Count:    total,
		Page:     page,
		PageSize: s.pageSize,
		HasNext:  page < lastPage,
		HasPrev:  page > 1,
	}, nil
}

func (s *productService) Get(dbc dbctx.Context, id uint) (*types.Product, error) {
	const op = "product.get"
	p, err := s.products.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if p == nil {
		return nil, apierr.NotFound(op)
	}
	return p, nil
}

func (s *productService) validate(dbc dbctx.Context, op string, in ProductInput, partial bool) error {
	fe := fieldErrors{}
	fe.checkText("title", in.Title, !partial, false, maxTitleLen)
	fe.checkText("slug", in.Slug, false, true, maxSlugLen)
	fe.checkPrice("unit_price", in.UnitPrice, !partial)
	fe.checkMinInt("inventory", in.Inventory, false, 0)
	if in.CollectionID == nil {
		if !partial {
			fe.add("collection", MsgRequired)
		}
	} else {
		ok, err := s.collections.Exists(dbc, *in.CollectionID)
		if err != nil {
			return aggregates.MapError(op, err)
		}
		if !ok {
			fe.add("collection", fmt.Sprintf(MsgInvalidCollectionF, *in.CollectionID))
		}
	}
	return fe.err(op)
}

func (s *productService) Create(dbc dbctx.Context, in ProductInput) (*types.Product, error) {
	const op = "product.create"
	var p *types.Product
	err := s.tx.InTx(dbc.Ctx, func(inner dbctx.Context) error {
		if err := s.validate(inner, op, in, false); err != nil {
			return err
		}
		p = &types.Product{
			Title:        *in.Title,
			UnitPrice:    *in.UnitPrice,
			CollectionID: *in.CollectionID,
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Inventory != nil {
			p.Inventory = *in.Inventory
		}
		if in.Slug != nil {
			p.Slug = slugify(*in.Slug)
		}
		if p.Slug == "" {
			p.Slug = slugify(p.Title)
		}
		if err := s.products.Create(inner, p); err != nil {
			return s.mapWriteError(op, err, p.CollectionID)
		}
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	s.log.Debug("product created", "product_id", p.ID, "collection_id", p.CollectionID)
	return s.Get(dbc, p.ID)
}

func (s *productService) Update(dbc dbctx.Context, id uint, in ProductInput, partial bool) (*types.Product, error) {
	const op = "product.update"
	updates := map[string]interface{}{"last_update": time.Now().UTC()}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Slug != nil {
		if slug := slugify(*in.Slug); slug != "" {
			updates["slug"] = slug
		}
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.UnitPrice != nil {
		updates["unit_price"] = *in.UnitPrice
	}
	if in.Inventory != nil {
		updates["inventory"] = *in.Inventory
	}
	if in.CollectionID != nil {
		updates["collection_id"] = *in.CollectionID
	}

	err := s.tx.InTx(dbc.Ctx, func(inner dbctx.Context) error {
		if _, err := s.Get(inner, id); err != nil {
			return err
		}
		if err := s.validate(inner, op, in, partial); err != nil {
			return err
		}
		if _, err := s.products.UpdateFields(inner, id, updates); err != nil {
			var collectionID uint
			if in.CollectionID != nil {
				collectionID = *in.CollectionID
			}
			return s.mapWriteError(op, err, collectionID)
		}
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return s.Get(dbc, id)
}

// mapWriteError reports a collection removed after validation as a bad collection.
func (s *productService) mapWriteError(op string, err error, collectionID uint) error {
	if aggregates.IsForeignKeyViolation(err) {
		return apierr.Invalid(op, "collection", fmt.Sprintf(MsgInvalidCollectionF, collectionID))
	}
	return aggregates.MapError(op, err)
}

func (s *productService) Delete(dbc dbctx.Context, id uint) error {
	err := s.tx.InTx(dbc.Ctx, func(inner dbctx.Context) error {
		return s.guard.Delete(inner, id)
	})
	if err != nil {
		if apierr.IsCode(err, apierr.CodeConflict) {
			s.log.Info("product delete refused", "product_id", id)
		}
		return err
	}
	s.log.Debug("product deleted", "product_id", id)
	return nil
}
