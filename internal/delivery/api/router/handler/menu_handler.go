package handler

import (
	"net/http"

	"unifeast/internal/delivery/api/middleware"
	"unifeast/internal/delivery/api/response"
	"unifeast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MenuHandler serves the personalized menu.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(menuUC usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{menuUC: menuUC}
}

// GetMenu prices the catalog for the caller. Anonymous callers get the default view.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	userID, signedIn := middleware.GetUserID(c)

	entries, err := h.menuUC.GetMenu(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &MenuResponse{
		Personalized: signedIn,
		Items:        entries,
	})
}
