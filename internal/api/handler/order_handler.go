package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickcart/commerce-platform/internal/api/metrics"
	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

// OrderHandler handles order requests. Creation is open to any authenticated
// user; everything else is admin only, enforced on the route group.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped cancelled"`
}

// Create handles POST /orders. The order's user id comes from the verified
// token subject; a body-supplied user id is ignored by design.
//
// @Summary      Create a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order items"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	order, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		UserID: identity.UserID,
		Items:  items,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// List handles GET /orders (admin only).
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:id (admin only).
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Update handles PUT /orders/:id (admin only, status changes).
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateOrderStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /orders/:id (admin only).
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order deleted"})
}
