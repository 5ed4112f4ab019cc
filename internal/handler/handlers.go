// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the..
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core..
// business logic.
package handler

import (
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Root   *RootHandler   // Root serves the greeting at "/".
	Item   *ItemHandler   // Item serves the /items resource.
	Health *HealthHandler // Health serves the service health endpoint.
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:   NewRootHandler(s),
		Item:   NewItemHandler(s, services.Item),
		Health: NewHealthHandler(s, services.Item),
	}
}
