package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-delivery/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup       = "/api"
	MenuRoute        = "/menu"
	MenuItemRoute    = "/menu/:id"
	UsersRoute       = "/users"
	RidersRoute      = "/riders"
	OrdersRoute      = "/orders"
	OrderStatusRoute = "/orders/:id/status"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	CatalogService CatalogServicer
	UserService    UserServicer
	RiderService   RiderServicer
	OrderService   OrderServicer
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	menuHandler := NewMenuHandler(args.CatalogService)
	usersHandler := NewUsersHandler(args.UserService)
	ridersHandler := NewRidersHandler(args.RiderService)
	ordersHandler := NewOrdersHandler(args.OrderService)

	api := r.Group(RouteGroup)

	api.POST(MenuRoute, menuHandler.Create)
	api.DELETE(MenuItemRoute, menuHandler.Delete)
	api.GET(MenuRoute, menuHandler.Index)

	api.POST(UsersRoute, usersHandler.Create)

	api.POST(RidersRoute, ridersHandler.Create)
	api.GET(RidersRoute, ridersHandler.Index)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrderStatusRoute, ordersHandler.Status)
	api.PUT(OrderStatusRoute, ordersHandler.UpdateStatus)

	return r
}
