package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/deppfellow/items-api/internal/model"
	"github.com/rs/zerolog"
)

// ErrItemNotFound is returned when no item carries the requested id.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository is an ordered in-memory item collection with a
// monotonically increasing id counter. Ids start at 1 and are never reused,
// even after a delete.
//
// Every operation runs under mu, so concurrent requests observe a serialized
// store. Returned items are copies.
type ItemRepository struct {
	mu     sync.RWMutex
	items  []model.Item
	nextID int

	// logger is used when ctx carries no logger. May be nil.
	logger *zerolog.Logger
}

// NewItemRepository returns an empty repository whose first id is 1.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:  make([]model.Item, 0),
		nextID: 1,
	}
}

// List returns the current contents in insertion order. The result is never
// nil.
func (r *ItemRepository) List(ctx context.Context) []model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, len(r.items))
	copy(items, r.items)

	return items
}

// Len returns the number of stored items.
func (r *ItemRepository) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Get returns the item with the given id.
func (r *ItemRepository) Get(ctx context.Context, id int) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	item := r.items[i]
	return &item, nil
}

// Create allocates the next id and appends a new item.
func (r *ItemRepository) Create(ctx context.Context, name, description string) *model.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := model.Item{
		ID:          r.nextID,
		Name:        name,
		Description: description,
	}
	r.nextID++
	r.items = append(r.items, item)

	r.log(ctx).Debug().
		Int("item_id", item.ID).
		Int("items", len(r.items)).
		Msg("item created")

	return &item
}

// Update replaces name and description of the item with the given id.
// Both fields are always overwritten; the id never changes.
func (r *ItemRepository) Update(ctx context.Context, id int, name, description string) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	r.items[i].Name = name
	r.items[i].Description = description

	r.log(ctx).Debug().
		Int("item_id", id).
		Msg("item updated")

	item := r.items[i]
	return &item, nil
}

// Delete removes the item with the given id and returns it as it was
// before removal.
func (r *ItemRepository) Delete(ctx context.Context, id int) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	item := r.items[i]
	r.items = append(r.items[:i], r.items[i+1:]...)

	r.log(ctx).Debug().
		Int("item_id", id).
		Int("items", len(r.items)).
		Msg("item deleted")

	return &item, nil
}

// log prefers the request logger in ctx and falls back to r.logger.
func (r *ItemRepository) log(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && r.logger != nil {
		return r.logger
	}
	return l
}

// indexOf does a linear scan; callers hold mu.
func (r *ItemRepository) indexOf(id int) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
