package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

type MenuHandler struct {
	svs CatalogServicer
}

func NewMenuHandler(svs CatalogServicer) *MenuHandler {
	return &MenuHandler{
		svs: svs,
	}
}

type AddMenuItemParams struct {
	ID        string          `json:"id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"decimal_gte0"`
	Inventory int             `json:"inventory" binding:"gte=0"`
}

type MenuItemResponse struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Inventory int     `json:"inventory"`
}

// Create POST RouteGroup + MenuRoute. Повторная отправка того же id перезаписывает позицию.
func (h *MenuHandler) Create(c *gin.Context) {
	var params AddMenuItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	h.svs.AddMenuItem(domain.MenuItem{
		ID:        params.ID,
		Name:      params.Name,
		Price:     params.Price,
		Inventory: params.Inventory,
	})

	c.Status(http.StatusOK)
}

// Delete DELETE RouteGroup + MenuItemRoute. Удаление отсутствующей позиции не ошибка.
func (h *MenuHandler) Delete(c *gin.Context) {
	h.svs.RemoveMenuItem(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Index GET RouteGroup + MenuRoute.
func (h *MenuHandler) Index(c *gin.Context) {
	menu := h.svs.GetMenu()

	response := make(map[string]MenuItemResponse, len(menu))
	for id, item := range menu {
		response[id] = MenuItemResponse{
			Name:      item.Name,
			Price:     item.Price.InexactFloat64(),
			Inventory: item.Inventory,
		}
	}

	c.JSON(http.StatusOK, response)
}
