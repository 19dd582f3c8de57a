package service

import (
	"context"

	"unifeast/internal/domain/entity"
)

// CatalogProvider supplies the ordered list of menu items. The core never modifies it.
type CatalogProvider interface {
	Items(ctx context.Context) ([]*entity.Item, error)
}
