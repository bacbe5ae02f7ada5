package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

// OrderLedger журнал созданных заказов. Заказы только добавляются и никогда не удаляются;
// после вставки меняется лишь статус.
type OrderLedger struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{
		orders: make(map[string]domain.Order),
	}
}

// Insert сохраняет заказ под свежим идентификатором и возвращает его.
// ID и CreatedAt, выставленные вызывающим, игнорируются.
func (l *OrderLedger) Insert(order domain.Order) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()

	// копия списка позиций, чтобы вызывающий не мог менять журнал задним числом
	itemIDs := make([]string, len(order.ItemIDs))
	copy(itemIDs, order.ItemIDs)
	order.ItemIDs = itemIDs

	l.orders[order.ID] = order
	return order.ID
}

// Get возвращает копию заказа.
func (l *OrderLedger) Get(orderID string) (domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	order, ok := l.orders[orderID]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}

	itemIDs := make([]string, len(order.ItemIDs))
	copy(itemIDs, order.ItemIDs)
	order.ItemIDs = itemIDs
	return order, nil
}

// UpdateStatus безусловно перезаписывает статус заказа. Валидации переходов нет —
// принимается любая строка.
func (l *OrderLedger) UpdateStatus(orderID string, status domain.OrderStatusType) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	order, ok := l.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	l.orders[orderID] = order
	return nil
}
