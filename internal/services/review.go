package services

import (
	"github.com/yungbote/storefront-backend/internal/data/aggregates"
	"github.com/yungbote/storefront-backend/internal/data/repos"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type ReviewInput struct {
	Name        *string
	Description *string
}

// ReviewService takes the product id from the route; any product named in a body is ignored.
type ReviewService interface {
	List(dbc dbctx.Context, productID uint) ([]*types.Review, error)
	Get(dbc dbctx.Context, productID, id uint) (*types.Review, error)
	Create(dbc dbctx.Context, productID uint, in ReviewInput) (*types.Review, error)
	Update(dbc dbctx.Context, productID, id uint, in ReviewInput, partial bool) (*types.Review, error)
	Delete(dbc dbctx.Context, productID, id uint) error
}

type reviewService struct {
	log      *logger.Logger
	tx       aggregates.TxRunner
	products repos.ProductRepo
	reviews  repos.ReviewRepo
}

func NewReviewService(log *logger.Logger, tx aggregates.TxRunner, products repos.ProductRepo, reviews repos.ReviewRepo) ReviewService {
	return &reviewService{
		log:      log.With("service", "ReviewService"),
		tx:       tx,
		products: products,
		reviews:  reviews,
	}
}

func (s *reviewService) requireProduct(dbc dbctx.Context, op string, productID uint) error {
	ok, err := s.products.Exists(dbc, productID)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if !ok {
		return apierr.NotFound(op)
	}
	return nil
}

func (s *reviewService) List(dbc dbctx.Context, productID uint) ([]*types.Review, error) {
	const op = "review.list"
	if err := s.requireProduct(dbc, op, productID); err != nil {
		return nil, err
	}
	rows, err := s.reviews.ListByProductID(dbc, productID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return rows, nil
}

func (s *reviewService) Get(dbc dbctx.Context, productID, id uint) (*types.Review, error) {
	const op = "review.get"
	if err := s.requireProduct(dbc, op, productID); err != nil {
		return nil, err
	}
	rv, err := s.reviews.GetByProductAndID(dbc, productID, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if rv == nil {
		return nil, apierr.NotFound(op)
	}
	return rv, nil
}

func validateReview(op string, in ReviewInput, partial bool) error {
	fe := fieldErrors{}
	fe.checkText("name", in.Name, !partial, false, maxTitleLen)
	fe.checkText("description", in.Description, !partial, false, 0)
	return fe.err(op)
}

func (s *reviewService) Create(dbc dbctx.Context, productID uint, in ReviewInput) (*types.Review, error) {
	const op = "review.create"
	var rv *types.Review
	err := s.tx.InTx(dbc.Ctx, func(inner dbctx.Context) error {
		if err := s.requireProduct(inner, op, productID); err != nil {
			return err
		}
		if err := validateReview(op, in, false); err != nil {
			return err
		}
		rv = &types.Review{
			ProductID:   productID,
			Name:        *in.Name,
			Description: *in.Description,
		}
		return s.reviews.Create(inner, rv)
	})
	if aggregates.IsForeignKeyViolation(err) {
		return nil, apierr.NotFound(op)
	}
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return rv, nil
}

func (s *reviewService) Update(dbc dbctx.Context, productID, id uint, in ReviewInput, partial bool) (*types.Review, error) {
	const op = "review.update"
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	err := s.tx.InTx(dbc.Ctx, func(inner dbctx.Context) error {
		if _, err := s.Get(inner, productID, id); err != nil {
			return err
		}
		if err := validateReview(op, in, partial); err != nil {
			return err
		}
		_, err := s.reviews.UpdateFields(inner, productID, id, updates)
		return err
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return s.Get(dbc, productID, id)
}

func (s *reviewService) Delete(dbc dbctx.Context, productID, id uint) error {
	const op = "review.delete"
	if err := s.requireProduct(dbc, op, productID); err != nil {
		return err
	}
	n, err := s.reviews.DeleteByProductAndID(dbc, productID, id)
	if err != nil {
		return aggregates.MapError(op, err)
	}
	if n == 0 {
		return apierr.NotFound(op)
	}
	return nil
}
