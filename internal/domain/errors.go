package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmptyOrder          = errors.New("order must have at least one item")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoRidersAvailable   = errors.New("no riders available")
	ErrOrderNotFound       = errors.New("order not found")

	// ErrInventoryInvariant внутренняя ошибка: остаток позиции ушел бы в минус.
	// До пользователя она доходить не должна.
	ErrInventoryInvariant = errors.New("inventory must not go negative")
)

type ItemNotFoundError struct {
	ItemID string
}

func NewItemNotFoundError(itemID string) error {
	return &ItemNotFoundError{ItemID: itemID}
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item %s not found", e.ItemID)
}

// InsufficientInventoryError перечисляет позиции заказа с нулевым остатком
// в порядке первого вхождения.
type InsufficientInventoryError struct {
	ItemIDs []string
}

func NewInsufficientInventoryError(itemIDs []string) error {
	return &InsufficientInventoryError{ItemIDs: itemIDs}
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for items: [%s]", strings.Join(e.ItemIDs, ", "))
}
