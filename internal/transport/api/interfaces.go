package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

type CatalogServicer interface {
	AddMenuItem(item domain.MenuItem)
	RemoveMenuItem(id string)
	GetMenu() map[string]domain.MenuItem
}

type UserServicer interface {
	AddUser(userID string, balance decimal.Decimal)
}

type RiderServicer interface {
	AddRider(riderID string)
	GetRiders() []string
}

type OrderServicer interface {
	Create(ctx context.Context, userID string, itemIDs []string, discountCode string) (string, error)
	GetDeliveryStatus(ctx context.Context, orderID string) (domain.OrderStatusType, error)
	UpdateDeliveryStatus(ctx context.Context, orderID string, status domain.OrderStatusType) error
}
