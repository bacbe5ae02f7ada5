package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

// Accounts хранит балансы пользователей.
type Accounts struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
}

func NewAccounts() *Accounts {
	return &Accounts{
		balances: make(map[string]decimal.Decimal),
	}
}

// AddUser вставляет либо перезаписывает баланс пользователя без проверок.
func (a *Accounts) AddUser(userID string, balance decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balances[userID] = balance
}

func (a *Accounts) Exists(userID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.balances[userID]
	return ok
}

func (a *Accounts) GetBalance(userID string) (decimal.Decimal, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	balance, ok := a.balances[userID]
	if !ok {
		return decimal.Zero, domain.ErrUserNotFound
	}
	return balance, nil
}

// Debit списывает сумму с баланса. Баланс не может уйти в минус:
// достаточность проверяется повторно на случай вызова вне транзакционной блокировки.
func (a *Accounts) Debit(userID string, amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	balance, ok := a.balances[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if balance.LessThan(amount) {
		return domain.ErrInsufficientBalance
	}
	a.balances[userID] = balance.Sub(amount)
	return nil
}
