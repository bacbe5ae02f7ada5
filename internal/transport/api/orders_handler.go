package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

type OrdersHandler struct {
	svs OrderServicer
}

func NewOrdersHandler(svs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		svs: svs,
	}
}

type CreateOrderParams struct {
	UserID       string   `json:"user_id" binding:"required"`
	ItemIDs      []string `json:"item_ids"`
	DiscountCode string   `json:"discount_code"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// Create POST RouteGroup + OrdersRoute.
func (h *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orderID, createErr := h.svs.Create(reqCtx, params.UserID, params.ItemIDs, params.DiscountCode)
	if createErr != nil {
		h.abortWithOrderError(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID})
}

// abortWithOrderError транслирует таксономию ошибок оформления в http статусы.
// Ошибки таксономии публичные: текст (вместе со списком позиций) уходит клиенту.
func (h *OrdersHandler) abortWithOrderError(c *gin.Context, err error) {
	var itemNotFound *domain.ItemNotFoundError
	var insufficientInventory *domain.InsufficientInventoryError

	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.As(err, &itemNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrEmptyOrder):
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
	case errors.As(err, &insufficientInventory):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInsufficientBalance):
		_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNoRidersAvailable):
		_ = c.AbortWithError(http.StatusServiceUnavailable, err).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

type StatusResponse struct {
	Status domain.OrderStatusType `json:"status"`
}

// Status GET RouteGroup + OrderStatusRoute.
func (h *OrdersHandler) Status(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status, err := h.svs.GetDeliveryStatus(reqCtx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: status})
}

type UpdateStatusParams struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus PUT RouteGroup + OrderStatusRoute. Статус принимается любой,
// машина состояний намеренно не навязывается.
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var params UpdateStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.svs.UpdateDeliveryStatus(reqCtx, c.Param("id"), domain.OrderStatusType(params.Status))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Status(http.StatusOK)
}
