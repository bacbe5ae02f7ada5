package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RidersHandler struct {
	svs RiderServicer
}

func NewRidersHandler(svs RiderServicer) *RidersHandler {
	return &RidersHandler{
		svs: svs,
	}
}

type AddRiderParams struct {
	RiderID string `json:"rider_id" binding:"required"`
}

// Create POST RouteGroup + RidersRoute.
func (h *RidersHandler) Create(c *gin.Context) {
	var params AddRiderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	h.svs.AddRider(params.RiderID)
	c.Status(http.StatusOK)
}

// Index GET RouteGroup + RidersRoute. Отдает только свободных курьеров.
func (h *RidersHandler) Index(c *gin.Context) {
	riders := h.svs.GetRiders()
	if riders == nil {
		riders = []string{}
	}
	c.JSON(http.StatusOK, riders)
}
