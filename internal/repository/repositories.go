// Package repository holds the storage layer.
//
// The only store is the in-memory item collection. Repositories are built
// once at process start and handed to the service layer, so each test can
// work against a fresh instance.
package repository

import (
	"github.com/deppfellow/items-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Items *ItemRepository
}

// NewRepositories constructs the repository container. The server logger
// backs store logging outside of a request.
func NewRepositories(s *server.Server) *Repositories {
	items := NewItemRepository()
	items.logger = s.Logger

	return &Repositories{
		Items: items,
	}
}
