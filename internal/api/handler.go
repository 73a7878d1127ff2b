package api

import (
	"net/http"

	"ordernest-be/internal/order"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	orders order.Service
}

func NewHandler(orders order.Service) *Handler {
	return &Handler{orders: orders}
}

func (h *Handler) Register(e *echo.Echo) {
	g := e.Group("/api/orders")
	g.POST("", h.CreateOrder)
	g.GET("/:orderId", h.GetOrderByID)
	g.GET("/user/:userId", h.GetOrdersByUser)
	g.POST("/:orderId/pay", h.PayOrder)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req order.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, "Invalid request payload")
	}

	resp, err := h.orders.CreateOrder(
		c.Request().Context(),
		req,
		c.Request().Header.Get("Authorization"),
		c.Request().Header.Get("Idempotency-Key"),
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetOrderByID(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, "Invalid order id")
	}

	resp, err := h.orders.GetOrderByID(c.Request().Context(), orderID, c.Request().Header.Get("Authorization"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetOrdersByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, "Invalid user id")
	}

	resp, err := h.orders.GetOrdersByUser(c.Request().Context(), userID, c.Request().Header.Get("Authorization"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) PayOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return writeErrorMessage(c, http.StatusBadRequest, "Invalid order id")
	}

	resp, err := h.orders.PayOrder(c.Request().Context(), orderID, c.Request().Header.Get("Authorization"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
