package services

import (
	"github.com/google/uuid"

	"github.com/yungbote/storefront-backend/internal/data/aggregates"
	"github.com/yungbote/storefront-backend/internal/data/repos"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type CartService interface {
	Create(dbc dbctx.Context) (*types.Cart, error)
	Get(dbc dbctx.Context, id uuid.UUID) (*types.Cart, error)
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type cartService struct {
	log   *logger.Logger
	tx    aggregates.TxRunner
	carts repos.CartRepo
}

func NewCartService(log *logger.Logger, tx aggregates.TxRunner, carts repos.CartRepo) CartService {
	return &cartService{
		log:   log.With("service", "CartService"),
		tx:    tx,
		carts: carts,
	}
}

func (s *cartService) Create(dbc dbctx.Context) (*types.Cart, error) {
	const op = "cart.create"
	c := &types.Cart{}
	if err := s.carts.Create(dbc, c); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	c.Items = []*types.CartItem{}
	s.log.Debug("cart created", "cart_id", c.ID.String())
	return c, nil
}

func (s *cartService) Get(dbc dbctx.Context, id uuid.UUID) (*types.Cart, error) {
	const op = "cart.get"
	c, err := s.carts.GetWithItems(dbc, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if c == nil {
		return nil, apierr.NotFound(op)
	}
	return c, nil
}

func (s *cartService) Delete(dbc dbctx.Context, id uuid.UUID) error {
	const op = "cart.delete"
	return s.tx.InTx(dbc.Ctx, func(inner dbctx.Context) error {
		n, err := s.carts.DeleteByID(inner, id)
		if err != nil {
			return aggregates.MapError(op, err)
		}
		if n == 0 {
			return apierr.NotFound(op)
		}
		return nil
	})
}
