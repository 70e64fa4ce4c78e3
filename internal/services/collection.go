package services

import (
	"github.com/yungbote/storefront-backend/internal/data/aggregates"
	"github.com/yungbote/storefront-backend/internal/data/repos"
	types "github.com/yungbote/storefront-backend/internal/domain/store"
	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

const MsgCollectionHasProducts = "Collection cannot be deleted because it includes one or more products."

type CollectionInput struct {
	Title *string
}

type CollectionService interface {
	List(dbc dbctx.Context) ([]*types.Collection, error)
	Get(dbc dbctx.Context, id uint) (*types.Collection, error)
	Create(dbc dbctx.Context, in CollectionInput) (*types.Collection, error)
	Update(dbc dbctx.Context, id uint, in CollectionInput, partial bool) (*types.Collection, error)
	Delete(dbc dbctx.Context, id uint) error
}

type collectionService struct {
	log         *logger.Logger
	tx          aggregates.TxRunner
	collections repos.CollectionRepo
	guard       aggregates.ReferenceGuard
}

func NewCollectionService(log *logger.Logger, tx aggregates.TxRunner, collections repos.CollectionRepo) CollectionService {
	return &collectionService{
		log:         log.With("service", "CollectionService"),
		tx:          tx,
		collections: collections,
		guard: aggregates.ReferenceGuard{
			Op:        "collection.delete",
			Model:     &types.Collection{},
			RefTable:  types.Product{}.TableName(),
			RefColumn: "collection_id",
			Message:   MsgCollectionHasProducts,
		},
	}
}

func (s *collectionService) List(dbc dbctx.Context) ([]*types.Collection, error) {
	rows, err := s.collections.List(dbc)
	if err != nil {
		return nil, aggregates.MapError("collection.list", err)
	}
	return rows, nil
}

func (s *collectionService) Get(dbc dbctx.Context, id uint) (*types.Collection, error) {
	const op = "collection.get"
	c, err := s.collections.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if c == nil {
		return nil, apierr.NotFound(op)
	}
	return c, nil
}

func (s *collectionService) Create(dbc dbctx.Context, in CollectionInput) (*types.Collection, error) {
	const op = "collection.create"
	fe := fieldErrors{}
	fe.checkText("title", in.Title, true, false, maxTitleLen)
	if err := fe.err(op); err != nil {
		return nil, err
	}
	c := &types.Collection{Title: *in.Title}
	if err := s.collections.Create(dbc, c); err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return s.Get(dbc, c.ID)
}

func (s *collectionService) Update(dbc dbctx.Context, id uint, in CollectionInput, partial bool) (*types.Collection, error) {
	const op = "collection.update"
	if _, err := s.Get(dbc, id); err != nil {
		return nil, err
	}
	fe := fieldErrors{}
	fe.checkText("title", in.Title, !partial, false, maxTitleLen)
	if err := fe.err(op); err != nil {
		return nil, err
	}
	if in.Title != nil {
		if _, err := s.collections.UpdateFields(dbc, id, map[string]interface{}{"title": *in.Title}); err != nil {
			return nil, aggregates.MapError(op, err)
		}
	}
	return s.Get(dbc, id)
}

func (s *collectionService) Delete(dbc dbctx.Context, id uint) error {
	err := s.tx.InTx(dbc.Ctx, func(inner dbctx.Context) error {
		return s.guard.Delete(inner, id)
	})
	if err != nil {
		if apierr.IsCode(err, apierr.CodeConflict) {
			s.log.Info("collection delete refused", "collection_id", id)
		}
		return err
	}
	return nil
}
