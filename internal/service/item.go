package service

import (
	"context"
	"errors"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
	pkgerrors "github.com/pkg/errors"
)

// ItemService exposes the item operations to the HTTP layer and translates
// store misses into the client-facing "Item not found." error.
type ItemService struct {
	server *server.Server
	repo   *repository.ItemRepository
}

func NewItemService(s *server.Server, repo *repository.ItemRepository) *ItemService {
	return &ItemService{
		server: s,
		repo:   repo,
	}
}

func (s *ItemService) ListItems(ctx context.Context) []model.Item {
	return s.repo.List(ctx)
}

func (s *ItemService) GetItem(ctx context.Context, id int) (*model.Item, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return item, nil
}

func (s *ItemService) CreateItem(ctx context.Context, payload *model.CreateItemPayload) *model.Item {
	return s.repo.Create(ctx, payload.NameText(), payload.DescriptionText())
}

func (s *ItemService) UpdateItem(ctx context.Context, id int, payload *model.UpdateItemPayload) (*model.Item, error) {
	item, err := s.repo.Update(ctx, id, payload.NameText(), payload.DescriptionText())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) (*model.Item, error) {
	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return item, nil
}

// CountItems reports the store size for the health endpoint.
func (s *ItemService) CountItems(ctx context.Context) int {
	return s.repo.Len(ctx)
}

// mapRepositoryError keeps the stack of anything unexpected so the global
// error handler can log where it came from.
func mapRepositoryError(err error) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return errs.ItemNotFound()
	}
	return pkgerrors.WithStack(err)
}
