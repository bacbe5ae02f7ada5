package service

import "github.com/fsdevblog/groph-delivery/internal/domain"

// CatalogService операции над меню. Инвариантов, кроме существования ключей, здесь нет:
// добавление и удаление — безусловный upsert/delete поверх каталога.
type CatalogService struct {
	catalog CatalogRepository
}

func NewCatalogService(catalog CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) AddMenuItem(item domain.MenuItem) {
	s.catalog.AddItem(item)
}

func (s *CatalogService) RemoveMenuItem(id string) {
	s.catalog.RemoveItem(id)
}

// GetMenu возвращает снимок меню. Исторические заказы могут ссылаться на позиции,
// которых в снимке уже нет.
func (s *CatalogService) GetMenu() map[string]domain.MenuItem {
	return s.catalog.Snapshot()
}
