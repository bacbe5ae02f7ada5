package service

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Notifier одностороннее уведомление получателя. Доставка best-effort:
// реализация не возвращает ошибку и не должна влиять на поток вызывающего.
type Notifier interface {
	Notify(recipientID string, message string)
}

type CatalogRepository interface {
	AddItem(item domain.MenuItem)
	RemoveItem(id string)
	Get(id string) (domain.MenuItem, bool)
	Decrement(id string) error
	Snapshot() map[string]domain.MenuItem
}

type AccountRepository interface {
	AddUser(userID string, balance decimal.Decimal)
	Exists(userID string) bool
	GetBalance(userID string) (decimal.Decimal, error)
	Debit(userID string, amount decimal.Decimal) error
}

type RiderRepository interface {
	Register(riderID string)
	TryAcquire() (string, bool)
	List() []string
	Len() int
}

type OrderRepository interface {
	Insert(order domain.Order) string
	Get(orderID string) (domain.Order, error)
	UpdateStatus(orderID string, status domain.OrderStatusType) error
}
