package impl

import (
	"context"
	"log/slog"

	deliverycontext "unifeast/internal/delivery/context"
	"unifeast/internal/domain/allergen"
	"unifeast/internal/domain/entity"
	domainerrors "unifeast/internal/domain/errors"
	"unifeast/internal/domain/pricing"
	"unifeast/internal/domain/service"
	"unifeast/internal/errors"
	"unifeast/internal/usecase"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	profiles usecase.ProfileUsecase
	catalog  service.CatalogProvider
	logger   *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(
	profiles usecase.ProfileUsecase,
	catalog service.CatalogProvider,
	logger *slog.Logger,
) usecase.MenuUsecase {
	return &menuService{
		profiles: profiles,
		catalog:  catalog,
		logger:   logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildMenu prices every item for the user's tier and flags allergen conflicts, in catalog order.
// A profile that cannot be resolved degrades to the default view: student prices, no warnings.
func (srv *menuService) BuildMenu(ctx context.Context, userID string, items []*entity.Item) []*entity.MenuEntry {
	profile := srv.profileFor(ctx, userID)

	entries := make([]*entity.MenuEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, &entity.MenuEntry{
			Item:            item,
			Price:           pricing.PriceFor(profile, item),
			AllergenWarning: allergen.HasConflict(profile, item),
		})
	}

	return entries
}

// GetMenu loads the catalog, then builds the menu for userID.
func (srv *menuService) GetMenu(ctx context.Context, userID string) ([]*entity.MenuEntry, error) {
	items, err := srv.catalog.Items(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load catalog", slog.Any("error", err))

		return nil, domainerrors.ErrCatalogUnavailable.WithCause(err)
	}

	return srv.BuildMenu(ctx, userID, items), nil
}

func (srv *menuService) profileFor(ctx context.Context, userID string) *entity.Profile {
	if userID == "" {
		return nil
	}

	profile, err := srv.profiles.GetProfile(ctx, userID)
	if err != nil {
		level := slog.LevelError
		switch {
		case errors.IsAny(err, domainerrors.ErrProfileNotFound, context.Canceled):
			level = slog.LevelDebug
		case domainerrors.IsBackendError(err):
			level = slog.LevelWarn
		}
		srv.log(ctx).Log(ctx, level, "Menu falling back to default view",
			slog.String("userID", userID),
			slog.Any("error", err),
		)

		return nil
	}

	return profile
}
