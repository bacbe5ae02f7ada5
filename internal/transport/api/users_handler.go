package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type UsersHandler struct {
	svs UserServicer
}

func NewUsersHandler(svs UserServicer) *UsersHandler {
	return &UsersHandler{
		svs: svs,
	}
}

type AddUserParams struct {
	UserID  string          `json:"user_id" binding:"required"`
	Balance decimal.Decimal `json:"balance" binding:"decimal_gte0"`
}

// Create POST RouteGroup + UsersRoute. Повторная отправка user_id перезаписывает баланс.
func (h *UsersHandler) Create(c *gin.Context) {
	var params AddUserParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	h.svs.AddUser(params.UserID, params.Balance)
	c.Status(http.StatusOK)
}
