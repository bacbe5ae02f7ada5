package store

import "sync"

// RiderPool очередь свободных курьеров (FIFO). Назначенный курьер из пула исчезает
// и сам по себе не возвращается — только повторной регистрацией.
type RiderPool struct {
	mu     sync.Mutex
	riders []string
}

func NewRiderPool() *RiderPool {
	return &RiderPool{}
}

// Register добавляет курьера в хвост очереди. Дубликаты не проверяются.
func (p *RiderPool) Register(riderID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.riders = append(p.riders, riderID)
}

// TryAcquire снимает курьера с головы очереди. Второе значение false — пул пуст.
func (p *RiderPool) TryAcquire() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.riders) == 0 {
		return "", false
	}
	riderID := p.riders[0]
	p.riders = p.riders[1:]
	return riderID, true
}

// List возвращает копию текущей очереди свободных курьеров.
func (p *RiderPool) List() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	list := make([]string, len(p.riders))
	copy(list, p.riders)
	return list
}

func (p *RiderPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.riders)
}
