package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

// Catalog хранит позиции меню в памяти. Методы безопасны для конкурентного вызова;
// сквозную согласованность «проверил остаток — списал» обеспечивает OrderService,
// сериализуя транзакцию целиком.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]domain.MenuItem
}

func NewCatalog() *Catalog {
	return &Catalog{
		items: make(map[string]domain.MenuItem),
	}
}

// AddItem вставляет либо перезаписывает позицию без проверок на существование.
func (c *Catalog) AddItem(item domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[item.ID] = item
}

// RemoveItem удаляет позицию. Отсутствие позиции не считается ошибкой.
func (c *Catalog) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
}

func (c *Catalog) Get(id string) (domain.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Decrement списывает одну единицу остатка. Вызывающий обязан заранее убедиться,
// что остаток положительный: уход в минус — нарушение инварианта, а не пользовательская ошибка.
func (c *Catalog) Decrement(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		return domain.NewItemNotFoundError(id)
	}
	if item.Inventory <= 0 {
		return errors.Wrapf(domain.ErrInventoryInvariant, "item %s", id)
	}
	item.Inventory--
	c.items[id] = item
	return nil
}

// Snapshot возвращает копию меню для листинга. Изменения копии на каталог не влияют.
func (c *Catalog) Snapshot() map[string]domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]domain.MenuItem, len(c.items))
	for id, item := range c.items {
		snapshot[id] = item
	}
	return snapshot
}
