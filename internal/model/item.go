// Package model holds the Item entity and the request payloads the HTTP
// layer binds into.
package model

import (
	"github.com/deppfellow/items-api/internal/validation"
)

// Item is the sole managed resource.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemPayload is the body of create and update requests.
//
// Fields are free JSON values: "required" rejects missing and null, "text"
// rejects the empty string and anything that is not a string (0, false,
// numbers, objects).
type ItemPayload struct {
	Name        any `json:"name" validate:"required,text"`
	Description any `json:"description" validate:"required,text"`
}

// Validate implements validation.Validatable.
func (p *ItemPayload) Validate() error {
	return validation.Struct(p)
}

// NameText returns the validated name.
func (p *ItemPayload) NameText() string {
	s, _ := p.Name.(string)
	return s
}

// DescriptionText returns the validated description.
func (p *ItemPayload) DescriptionText() string {
	s, _ := p.Description.(string)
	return s
}

// EmptyPayload is bound for routes that take no input (GET /, GET /items).
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}

// ItemIDPayload is bound for GET and DELETE /items/:id.
//
// ID stays raw text; handlers resolve it so that an unparsable id is an
// "Item not found." rather than a validation failure.
type ItemIDPayload struct {
	ID string `param:"id"`
}

func (p *ItemIDPayload) Validate() error {
	return nil
}

// CreateItemPayload is bound for POST /items.
type CreateItemPayload struct {
	ItemPayload
}

// UpdateItemPayload is bound for PUT /items/:id.
type UpdateItemPayload struct {
	ID string `param:"id"`
	ItemPayload
}
