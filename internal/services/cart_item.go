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

const MsgNoSuchProduct = "No product with the given ID was found."

type AddCartItemInput struct {
	ProductID *uint
	Quantity  *int
}

// CartItemService takes the cart id from the route; any cart named in a body is ignored.
type CartItemService interface {
	List(dbc dbctx.Context, cartID uuid.UUID) ([]*types.CartItem, error)
	Get(dbc dbctx.Context, cartID uuid.UUID, id uint) (*types.CartItem, error)
	// Add merges into an existing line for the same product by raising its quantity.
	Add(dbc dbctx.Context, cartID uuid.UUID, in AddCartItemInput) (*types.CartItem, error)
	UpdateQuantity(dbc dbctx.Context, cartID uuid.UUID, id uint, quantity *int) (*types.CartItem, error)
	Delete(dbc dbctx.Context, cartID uuid.UUID, id uint) error
}

type cartItemService struct {
	log      *logger.Logger
	tx       aggregates.TxRunner
	carts    repos.CartRepo
	items    repos.CartItemRepo
	products repos.ProductRepo
}

func NewCartItemService(log *logger.Logger, tx aggregates.TxRunner, carts repos.CartRepo, items repos.CartItemRepo, products repos.ProductRepo) CartItemService {
	return &cartItemService{
		log:      log.With("service", "CartItemService"),
		tx:       tx,
		carts:    carts,
		items:    items,
		products: products,
	}
}

func (s *cartItemService) requireCart(dbc dbctx.Context, op string, cartID uuid.UUID) error {
	ok, err := s.carts.Exists(dbc, cartID)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if !ok {
		return apierr.NotFound(op)
	}
	return nil
}

func (s *cartItemService) List(dbc dbctx.Context, cartID uuid.UUID) ([]*types.CartItem, error) {
	const op = "cart_item.list"
	if err := s.requireCart(dbc, op, cartID); err != nil {
		return nil, err
	}
	rows, err := s.items.ListByCartID(dbc, cartID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return rows, nil
}

func (s *cartItemService) Get(dbc dbctx.Context, cartID uuid.UUID, id uint) (*types.CartItem, error) {
	const op = "cart_item.get"
	if err := s.requireCart(dbc, op, cartID); err != nil {
		return nil, err
	}
	it, err := s.items.GetByCartAndID(dbc, cartID, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if it == nil {
		return nil, apierr.NotFound(op)
	}
	return it, nil
}

func (s *cartItemService) Add(dbc dbctx.Context, cartID uuid.UUID, in AddCartItemInput) (*types.CartItem, error) {
	const op = "cart_item.add"
	if err := s.requireCart(dbc, op, cartID); err != nil {
		return nil, err
	}

	fe := fieldErrors{}
	if in.ProductID == nil {
		fe.add("product_id", MsgRequired)
	} else {
		ok, err := s.products.Exists(dbc, *in.ProductID)
		if err != nil {
			return nil, aggregates.MapError(op, err)
		}
		if !ok {
			fe.add("product_id", MsgNoSuchProduct)
		}
	}
	fe.checkIntRange("quantity", in.Quantity, true, 1, MaxQuantity)
	if err := fe.err(op); err != nil {
		return nil, err
	}
	productID, qty := *in.ProductID, *in.Quantity

	var itemID uint
	merge := func(inner dbctx.Context) error {
		existing, err := s.items.GetByCartAndProduct(inner, cartID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			itemID = existing.ID
			n, err := s.items.IncrementQuantity(inner, existing.ID, qty, MaxQuantity)
			if err != nil {
				return err
			}
			if n == 0 {
				return apierr.Invalid(op, "quantity", MaxValueMessage(MaxQuantity))
			}
			return nil
		}
		it := &types.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}
		if err := s.items.Create(inner, it); err != nil {
			return err
		}
		itemID = it.ID
		return nil
	}

	err := s.tx.InTx(dbc.Ctx, merge)
	if aggregates.IsUniqueViolation(err) {
		// A concurrent add created the line first; the retry sees it and increments.
		s.log.Debug("cart item insert lost race, retrying as increment", "cart_id", cartID.String(), "product_id", productID)
		err = s.tx.InTx(dbc.Ctx, merge)
	}
	if aggregates.IsForeignKeyViolation(err) {
		// The product was deleted between validation and insert.
		return nil, apierr.Invalid(op, "product_id", MsgNoSuchProduct)
	}
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return s.Get(dbc, cartID, itemID)
}

func (s *cartItemService) UpdateQuantity(dbc dbctx.Context, cartID uuid.UUID, id uint, quantity *int) (*types.CartItem, error) {
	const op = "cart_item.update"
	if _, err := s.Get(dbc, cartID, id); err != nil {
		return nil, err
	}
	fe := fieldErrors{}
	fe.checkIntRange("quantity", quantity, true, 1, MaxQuantity)
	if err := fe.err(op); err != nil {
		return nil, err
	}
	if _, err := s.items.UpdateQuantity(dbc, cartID, id, *quantity); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return s.Get(dbc, cartID, id)
}

func (s *cartItemService) Delete(dbc dbctx.Context, cartID uuid.UUID, id uint) error {
	const op = "cart_item.delete"
	if err := s.requireCart(dbc, op, cartID); err != nil {
		return err
	}
	n, err := s.items.DeleteByCartAndID(dbc, cartID, id)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if n == 0 {
		return apierr.NotFound(op)
	}
	return nil
}
