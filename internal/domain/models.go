package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type MenuItem struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Inventory int
}

type Account struct {
	UserID  string
	Balance decimal.Decimal
}

type Order struct {
	ID        string
	CreatedAt time.Time
	UserID    string
	ItemIDs   []string
	Total     decimal.Decimal
	Status    OrderStatusType
	RiderID   string
}
