package usecase

import (
	"context"

	"unifeast/internal/domain/entity"
)

// MenuUsecase assembles per-user menus: the tier price and an allergen warning for every item.
type MenuUsecase interface {
	// BuildMenu never fails; when no profile can be resolved the default view is returned.
	BuildMenu(ctx context.Context, userID string, items []*entity.Item) []*entity.MenuEntry

	// GetMenu loads the catalog and builds the menu. Only catalog failures are returned.
	GetMenu(ctx context.Context, userID string) ([]*entity.MenuEntry, error)
}
