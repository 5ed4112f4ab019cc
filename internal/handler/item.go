package handler

import (
	"math"
	"strconv"
	"strings"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/model"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves the /items resource.
//
// Create and update only run after the payload passed validation (see
// model.ItemPayload); list, get and delete take no body.
type ItemHandler struct {
	Handler
	itemService *service.ItemService
}

func NewItemHandler(s *server.Server, itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler:     NewHandler(s),
		itemService: itemService,
	}
}

func (h *ItemHandler) ListItems(c echo.Context, req *model.EmptyPayload) ([]model.Item, error) {
	return h.itemService.ListItems(c.Request().Context()), nil
}

func (h *ItemHandler) GetItem(c echo.Context, req *model.ItemIDPayload) (*model.Item, error) {
	id, ok := parseItemID(req.ID)
	if !ok {
		return nil, errs.ItemNotFound()
	}
	return h.itemService.GetItem(c.Request().Context(), id)
}

func (h *ItemHandler) CreateItem(c echo.Context, req *model.CreateItemPayload) (*model.Item, error) {
	return h.itemService.CreateItem(c.Request().Context(), req), nil
}

func (h *ItemHandler) UpdateItem(c echo.Context, req *model.UpdateItemPayload) (*model.Item, error) {
	id, ok := parseItemID(req.ID)
	if !ok {
		return nil, errs.ItemNotFound()
	}
	return h.itemService.UpdateItem(c.Request().Context(), id, req)
}

func (h *ItemHandler) DeleteItem(c echo.Context, req *model.ItemIDPayload) (*model.Item, error) {
	id, ok := parseItemID(req.ID)
	if !ok {
		return nil, errs.ItemNotFound()
	}
	return h.itemService.DeleteItem(c.Request().Context(), id)
}

// maxItemID keeps float-to-int conversion exact.
const maxItemID = 1 << 53

// parseItemID coerces the path segment numerically: surrounding spaces are
// ignored and "1", "+1", "1.0", "1e0" and "0x1" all name item 1. Unsigned
// 0x, 0o and 0b integers are read in their base. Fractions, NaN, Infinity
// and anything else name no item.
func parseItemID(raw string) (int, bool) {
	s := strings.TrimSpace(raw)

	if len(s) > 2 && s[0] == '0' {
		if base, ok := radixPrefixes[s[1]]; ok {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil || n < 1 || n > maxItemID {
				return 0, false
			}
			return int(n), true
		}
	}

	// ParseFloat also reads Go-only forms ("inf", "0x1p4", "1_000").
	if strings.IndexFunc(s, notDecimal) >= 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 1 || f > maxItemID {
		return 0, false
	}
	return int(f), true
}

var radixPrefixes = map[byte]int{
	'x': 16, 'X': 16,
	'o': 8, 'O': 8,
	'b': 2, 'B': 2,
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}
