package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-delivery/internal/domain"
)

// RestaurantChannel фиксированный получатель уведомлений о новых заказах.
const RestaurantChannel = "restaurant"

// OrderService транзакционное ядро системы. Оформление заказа затрагивает сразу
// каталог, баланс, пул курьеров и журнал заказов, поэтому последовательность
// «валидация — коммит» выполняется целиком под одной блокировкой: два конкурентных
// Create не могут одновременно пройти проверку остатка, который достанется лишь одному.
type OrderService struct {
	mu       sync.Mutex
	catalog  CatalogRepository
	accounts AccountRepository
	riders   RiderRepository
	ledger   OrderRepository
	notifier Notifier
}

func NewOrderService(
	catalog CatalogRepository,
	accounts AccountRepository,
	riders RiderRepository,
	ledger OrderRepository,
	notifier Notifier,
) (*OrderService, error) {
	if notifier == nil {
		return nil, errors.New("order service: nil notifier")
	}
	return &OrderService{
		catalog:  catalog,
		accounts: accounts,
		riders:   riders,
		ledger:   ledger,
		notifier: notifier,
	}, nil
}

// Create оформляет заказ пользователя и возвращает идентификатор созданного заказа.
//
// Порядок проверок фиксирован, первая неудача прерывает операцию без изменений состояния:
//  1. пользователь существует;
//  2. список позиций не пуст;
//  3. каждая позиция есть в каталоге;
//  4. ни у одной позиции заказа остаток не нулевой (повторы проверяются по отдельности);
//  5. баланса хватает на сумму с учетом скидки;
//  6. в пуле есть свободный курьер.
//
// Коммит: списание остатков по каждому вхождению позиции, списание суммы с баланса,
// назначение курьера из головы очереди, запись заказа со статусом Pending,
// два уведомления (пользователю и ресторану).
func (s *OrderService) Create(
	ctx context.Context,
	userID string,
	itemIDs []string,
	discountCode string,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err //nolint:wrapcheck
	}

	total, err := s.validate(userID, itemIDs, discountCode)
	if err != nil {
		return "", err
	}

	return s.commit(userID, itemIDs, total)
}

// validate выполняет все проверки заказа и возвращает итоговую сумму со скидкой.
// Состояние не меняется.
func (s *OrderService) validate(userID string, itemIDs []string, discountCode string) (decimal.Decimal, error) {
	if !s.accounts.Exists(userID) {
		return decimal.Zero, domain.ErrUserNotFound
	}
	if len(itemIDs) == 0 {
		return decimal.Zero, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	var outOfStock []string
	reported := make(map[string]struct{})

	for _, itemID := range itemIDs {
		item, ok := s.catalog.Get(itemID)
		if !ok {
			return decimal.Zero, domain.NewItemNotFoundError(itemID)
		}
		if item.Inventory <= 0 {
			if _, seen := reported[itemID]; !seen {
				reported[itemID] = struct{}{}
				outOfStock = append(outOfStock, itemID)
			}
		}
		total = total.Add(item.Price)
	}

	if len(outOfStock) > 0 {
		return decimal.Zero, domain.NewInsufficientInventoryError(outOfStock)
	}

	total = total.Sub(total.Mul(domain.DiscountRate(discountCode)))

	balance, balanceErr := s.accounts.GetBalance(userID)
	if balanceErr != nil {
		return decimal.Zero, balanceErr
	}
	if balance.LessThan(total) {
		return decimal.Zero, domain.ErrInsufficientBalance
	}

	// Курьер проверяется до каких-либо мутаций: отказ по курьеру после списания
	// остатков оставил бы каталог без компенсации.
	if s.riders.Len() == 0 {
		return decimal.Zero, domain.ErrNoRidersAvailable
	}

	return total, nil
}

func (s *OrderService) commit(userID string, itemIDs []string, total decimal.Decimal) (string, error) {
	for _, itemID := range itemIDs {
		if err := s.catalog.Decrement(itemID); err != nil {
			return "", err
		}
	}

	if err := s.accounts.Debit(userID, total); err != nil {
		return "", err
	}

	riderID, ok := s.riders.TryAcquire()
	if !ok {
		// Недостижимо под транзакционной блокировкой, пул проверен на этапе валидации.
		return "", domain.ErrNoRidersAvailable
	}

	orderID := s.ledger.Insert(domain.Order{
		UserID:  userID,
		ItemIDs: itemIDs,
		Total:   total,
		Status:  domain.OrderStatusPending,
		RiderID: riderID,
	})

	s.notify(userID, fmt.Sprintf("Your order %s has been placed successfully.", orderID))
	s.notify(RestaurantChannel, fmt.Sprintf("A new order %s has been received.", orderID))

	return orderID, nil
}

// notify отправляет уведомление, гася любую панику реализации:
// сбой доставки не должен откатывать или ронять уже оформленный заказ.
func (s *OrderService) notify(recipientID, message string) {
	defer func() {
		_ = recover()
	}()
	s.notifier.Notify(recipientID, message)
}

// GetDeliveryStatus возвращает текущий статус заказа.
func (s *OrderService) GetDeliveryStatus(ctx context.Context, orderID string) (domain.OrderStatusType, error) {
	if err := ctx.Err(); err != nil {
		return "", err //nolint:wrapcheck
	}
	order, err := s.ledger.Get(orderID)
	if err != nil {
		return "", err
	}
	return order.Status, nil
}

// UpdateDeliveryStatus безусловно перезаписывает статус заказа.
func (s *OrderService) UpdateDeliveryStatus(ctx context.Context, orderID string, status domain.OrderStatusType) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	return s.ledger.UpdateStatus(orderID, status)
}
