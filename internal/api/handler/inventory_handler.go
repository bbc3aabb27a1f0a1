package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

// InventoryHandler handles stock record requests. Per-product reads are
// public so the shop can show availability; everything else is admin only.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type createInventoryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type updateInventoryRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// List handles GET /inventory (admin only).
func (h *InventoryHandler) List(c echo.Context) error {
	records, err := h.service.ListRecords(c.Request().Context())
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.InventoryRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

// GetByProduct handles GET /inventory/:productId (public). A missing record
// is reported as 404 with an explicit zero quantity.
func (h *InventoryHandler) GetByProduct(c echo.Context) error {
	productID := c.Param("productId")
	record, err := h.service.GetByProductID(c.Request().Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrInventoryNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"product_id": productID, "quantity": 0})
		}
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Create handles POST /inventory (admin only).
func (h *InventoryHandler) Create(c echo.Context) error {
	var req createInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.CreateRecord(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// Update handles PUT /inventory/:productId (admin only).
func (h *InventoryHandler) Update(c echo.Context) error {
	var req updateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.SetQuantity(c.Request().Context(), c.Param("productId"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /inventory/:productId (admin only).
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteByProductID(c.Request().Context(), c.Param("productId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "inventory record deleted"})
}
