package handler

import (
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category catalog handlers.
type CategoryHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every category.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, categories)
}

// Create registers a new category under a caller-chosen identifier.
func (h *CategoryHandler) Create(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Message(c, http.StatusBadRequest, "invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CreateCategory(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "category created successfully!")
}

// Update renames a category, carrying its products over to the new identifier.
func (h *CategoryHandler) Update(c echo.Context) error {
	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Message(c, http.StatusBadRequest, "invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateCategory(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "updated category successfully!")
}

// Delete removes a category together with every product filed under it.
func (h *CategoryHandler) Delete(c echo.Context) error {
	var input usecase.DeleteCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.Message(c, http.StatusBadRequest, "invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "category deleted successfully!")
}
