// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
)

type Services struct {
	Item *ItemService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Item: NewItemService(s, repos.Items),
	}
}
