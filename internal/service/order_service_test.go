package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-delivery/internal/domain"
	"github.com/fsdevblog/groph-delivery/internal/service/mocks"
	"github.com/fsdevblog/groph-delivery/internal/store"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockNotifier *mocks.MockNotifier
	catalog      *store.Catalog
	accounts     *store.Accounts
	riders       *store.RiderPool
	ledger       *store.OrderLedger
	orderService *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)

	s.catalog = store.NewCatalog()
	s.accounts = store.NewAccounts()
	s.riders = store.NewRiderPool()
	s.ledger = store.NewOrderLedger()

	orderService, err := NewOrderService(s.catalog, s.accounts, s.riders, s.ledger, s.mockNotifier)
	s.Require().NoError(err)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// seed базовый сценарий: один бургер за 5.99 (остаток 10), юзер с балансом 20, один курьер.
func (s *OrderServiceTestSuite) seed() {
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Burger", Price: decimal.NewFromFloat(5.99), Inventory: 10})
	s.accounts.AddUser("user1", decimal.NewFromFloat(20))
	s.riders.Register("rider1")
}

func (s *OrderServiceTestSuite) expectNotifications() {
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *OrderServiceTestSuite) TestCreate() {
	s.seed()

	var userMsg, restaurantMsg string
	s.mockNotifier.EXPECT().
		Notify("user1", gomock.Any()).
		Do(func(_, message string) { userMsg = message }).
		Times(1)
	s.mockNotifier.EXPECT().
		Notify(RestaurantChannel, gomock.Any()).
		Do(func(_, message string) { restaurantMsg = message }).
		Times(1)

	orderID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)
	s.Require().NotEmpty(orderID)

	// запись в журнале
	order, getErr := s.ledger.Get(orderID)
	s.Require().NoError(getErr)
	s.Equal("user1", order.UserID)
	s.Equal([]string{"item1"}, order.ItemIDs)
	s.Equal(domain.OrderStatusPending, order.Status)
	s.Equal("rider1", order.RiderID)
	s.True(order.Total.Equal(decimal.NewFromFloat(5.99)))

	// остаток списан ровно на единицу
	item, _ := s.catalog.Get("item1")
	s.Equal(9, item.Inventory)

	// курьер ушел из пула и сам не возвращается
	s.Empty(s.riders.List())

	// баланс списан на итоговую сумму
	balance, _ := s.accounts.GetBalance("user1")
	s.True(balance.Equal(decimal.NewFromFloat(14.01)))

	// оба уведомления содержат идентификатор заказа
	s.Equal("Your order "+orderID+" has been placed successfully.", userMsg)
	s.Equal("A new order "+orderID+" has been received.", restaurantMsg)
}

func (s *OrderServiceTestSuite) TestCreateTotalCountsRepeats() {
	s.expectNotifications()
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Pizza", Price: decimal.NewFromInt(10), Inventory: 5})
	s.accounts.AddUser("user1", decimal.NewFromInt(100))
	s.riders.Register("rider1")

	orderID, err := s.orderService.Create(context.Background(), "user1", []string{"item1", "item1", "item1"}, "")
	s.Require().NoError(err)

	order, _ := s.ledger.Get(orderID)
	s.True(order.Total.Equal(decimal.NewFromInt(30)))

	item, _ := s.catalog.Get("item1")
	s.Equal(2, item.Inventory)
}

func (s *OrderServiceTestSuite) TestCreateAppliesDiscount() {
	s.expectNotifications()
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Pizza", Price: decimal.NewFromInt(10), Inventory: 5})
	s.accounts.AddUser("user1", decimal.NewFromInt(100))
	s.riders.Register("rider1")
	s.riders.Register("rider2")

	orderID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "DISCOUNT10")
	s.Require().NoError(err)

	order, _ := s.ledger.Get(orderID)
	s.True(order.Total.Equal(decimal.NewFromInt(9)), "got total %s", order.Total)

	orderID, err = s.orderService.Create(context.Background(), "user1", []string{"item1"}, "DISCOUNT20")
	s.Require().NoError(err)

	order, _ = s.ledger.Get(orderID)
	s.True(order.Total.Equal(decimal.NewFromInt(8)), "got total %s", order.Total)
}

// Нераспознанный код скидки молча игнорируется, заказ не отклоняется.
func (s *OrderServiceTestSuite) TestCreateIgnoresUnknownDiscountCode() {
	s.expectNotifications()
	s.seed()

	orderID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "WELCOME")
	s.Require().NoError(err)

	order, _ := s.ledger.Get(orderID)
	s.True(order.Total.Equal(decimal.NewFromFloat(5.99)))
}

func (s *OrderServiceTestSuite) TestCreateUserNotFound() {
	s.seed()

	_, err := s.orderService.Create(context.Background(), "ghost", []string{"item1"}, "")
	s.True(errors.Is(err, domain.ErrUserNotFound))
}

func (s *OrderServiceTestSuite) TestCreateEmptyOrder() {
	s.seed()

	_, err := s.orderService.Create(context.Background(), "user1", nil, "")
	s.True(errors.Is(err, domain.ErrEmptyOrder))

	_, err = s.orderService.Create(context.Background(), "user1", []string{}, "")
	s.True(errors.Is(err, domain.ErrEmptyOrder))
}

// Сообщается первая отсутствующая позиция.
func (s *OrderServiceTestSuite) TestCreateItemNotFound() {
	s.seed()

	_, err := s.orderService.Create(context.Background(), "user1", []string{"item1", "ghostA", "ghostB"}, "")

	var itemErr *domain.ItemNotFoundError
	s.Require().True(errors.As(err, &itemErr))
	s.Equal("ghostA", itemErr.ItemID)
}

func (s *OrderServiceTestSuite) TestCreateInsufficientInventory() {
	s.seed()
	s.catalog.AddItem(domain.MenuItem{ID: "item2", Name: "Fries", Price: decimal.NewFromFloat(1.99), Inventory: 0})
	s.catalog.AddItem(domain.MenuItem{ID: "item3", Name: "Cola", Price: decimal.NewFromFloat(0.99), Inventory: 0})

	_, err := s.orderService.Create(
		context.Background(),
		"user1",
		[]string{"item2", "item1", "item3", "item2"},
		"",
	)

	// перечислены ровно нулевые позиции в порядке первого вхождения
	var invErr *domain.InsufficientInventoryError
	s.Require().True(errors.As(err, &invErr))
	s.Equal([]string{"item2", "item3"}, invErr.ItemIDs)

	// никаких мутаций: остатки, баланс и пул курьеров нетронуты
	item, _ := s.catalog.Get("item1")
	s.Equal(10, item.Inventory)
	balance, _ := s.accounts.GetBalance("user1")
	s.True(balance.Equal(decimal.NewFromFloat(20)))
	s.Equal([]string{"rider1"}, s.riders.List())
}

func (s *OrderServiceTestSuite) TestCreateInsufficientBalance() {
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Burger", Price: decimal.NewFromFloat(5.99), Inventory: 10})
	s.accounts.AddUser("user1", decimal.NewFromFloat(5))
	s.riders.Register("rider1")

	_, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.True(errors.Is(err, domain.ErrInsufficientBalance))

	item, _ := s.catalog.Get("item1")
	s.Equal(10, item.Inventory)
}

// Скидка может сделать недоступный заказ доступным: проверяется итоговая сумма.
func (s *OrderServiceTestSuite) TestCreateDiscountSavesOrder() {
	s.expectNotifications()
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Pizza", Price: decimal.NewFromInt(10), Inventory: 5})
	s.accounts.AddUser("user1", decimal.NewFromInt(9))
	s.riders.Register("rider1")

	_, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.True(errors.Is(err, domain.ErrInsufficientBalance))

	_, err = s.orderService.Create(context.Background(), "user1", []string{"item1"}, "DISCOUNT10")
	s.NoError(err)
}

// Отсутствие курьеров обнаруживается до коммита: остатки не списываются.
func (s *OrderServiceTestSuite) TestCreateNoRidersLeavesStateUntouched() {
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Burger", Price: decimal.NewFromFloat(5.99), Inventory: 10})
	s.accounts.AddUser("user1", decimal.NewFromFloat(20))

	_, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.True(errors.Is(err, domain.ErrNoRidersAvailable))

	item, _ := s.catalog.Get("item1")
	s.Equal(10, item.Inventory)
	balance, _ := s.accounts.GetBalance("user1")
	s.True(balance.Equal(decimal.NewFromFloat(20)))
}

// Повторные заказы одного юзера расходуют баланс, пока его хватает.
func (s *OrderServiceTestSuite) TestCreateDebitsBalanceAcrossOrders() {
	s.expectNotifications()
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Pizza", Price: decimal.NewFromInt(10), Inventory: 100})
	s.accounts.AddUser("user1", decimal.NewFromInt(25))
	for range 3 {
		s.riders.Register("rider1")
	}

	_, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)
	_, err = s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)

	// на третий заказ осталось 5
	_, err = s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.True(errors.Is(err, domain.ErrInsufficientBalance))

	balance, _ := s.accounts.GetBalance("user1")
	s.True(balance.Equal(decimal.NewFromInt(5)))
}

func (s *OrderServiceTestSuite) TestCreateAssignsRidersFIFO() {
	s.expectNotifications()
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Pizza", Price: decimal.NewFromInt(1), Inventory: 10})
	s.accounts.AddUser("user1", decimal.NewFromInt(100))
	s.riders.Register("rider1")
	s.riders.Register("rider2")

	firstID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)
	secondID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)

	first, _ := s.ledger.Get(firstID)
	second, _ := s.ledger.Get(secondID)
	s.Equal("rider1", first.RiderID)
	s.Equal("rider2", second.RiderID)
	s.Empty(s.riders.List())
}

// Паника в реализации уведомлений не должна ронять уже оформленный заказ.
func (s *OrderServiceTestSuite) TestCreateSurvivesNotifierPanic() {
	s.seed()
	s.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Do(func(_, _ string) { panic("notifier down") }).
		Times(2)

	orderID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)

	_, getErr := s.ledger.Get(orderID)
	s.NoError(getErr)
}

func (s *OrderServiceTestSuite) TestCreateCancelledContext() {
	s.seed()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.orderService.Create(ctx, "user1", []string{"item1"}, "")
	s.True(errors.Is(err, context.Canceled))

	item, _ := s.catalog.Get("item1")
	s.Equal(10, item.Inventory)
}

// Два конкурентных заказа на последнюю единицу: ровно один успех,
// ровно один отказ по остатку, остаток не уходит в минус.
func (s *OrderServiceTestSuite) TestCreateConcurrentLastUnit() {
	s.expectNotifications()
	s.catalog.AddItem(domain.MenuItem{ID: "item1", Name: "Burger", Price: decimal.NewFromInt(1), Inventory: 1})
	s.accounts.AddUser("user1", decimal.NewFromInt(100))
	s.accounts.AddUser("user2", decimal.NewFromInt(100))
	s.riders.Register("rider1")
	s.riders.Register("rider2")

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i, userID := range []string{"user1", "user2"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.orderService.Create(context.Background(), userID, []string{"item1"}, "")
		}()
	}
	wg.Wait()

	var successes, inventoryFailures int
	for _, err := range errs {
		var invErr *domain.InsufficientInventoryError
		switch {
		case err == nil:
			successes++
		case errors.As(err, &invErr):
			inventoryFailures++
			s.Equal([]string{"item1"}, invErr.ItemIDs)
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}

	s.Equal(1, successes)
	s.Equal(1, inventoryFailures)

	item, _ := s.catalog.Get("item1")
	s.Equal(0, item.Inventory)
}

func (s *OrderServiceTestSuite) TestGetDeliveryStatus() {
	s.expectNotifications()
	s.seed()

	orderID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)

	status, err := s.orderService.GetDeliveryStatus(context.Background(), orderID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPending, status)

	_, err = s.orderService.GetDeliveryStatus(context.Background(), "ghost")
	s.True(errors.Is(err, domain.ErrOrderNotFound))
}

// Последовательность обновлений возвращает ровно последний статус, включая произвольные строки.
func (s *OrderServiceTestSuite) TestUpdateDeliveryStatus() {
	s.expectNotifications()
	s.seed()

	orderID, err := s.orderService.Create(context.Background(), "user1", []string{"item1"}, "")
	s.Require().NoError(err)

	for _, status := range []domain.OrderStatusType{
		domain.OrderStatusOutForDelivery,
		"StuckInTraffic",
		domain.OrderStatusDelivered,
	} {
		s.Require().NoError(s.orderService.UpdateDeliveryStatus(context.Background(), orderID, status))

		current, statusErr := s.orderService.GetDeliveryStatus(context.Background(), orderID)
		s.Require().NoError(statusErr)
		s.Equal(status, current)
	}

	err = s.orderService.UpdateDeliveryStatus(context.Background(), "ghost", domain.OrderStatusDelivered)
	s.True(errors.Is(err, domain.ErrOrderNotFound))
}
