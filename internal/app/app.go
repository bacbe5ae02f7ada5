package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-delivery/internal/config"
	"github.com/fsdevblog/groph-delivery/internal/notify"
	"github.com/fsdevblog/groph-delivery/internal/service"
	"github.com/fsdevblog/groph-delivery/internal/store"
	"github.com/fsdevblog/groph-delivery/internal/transport/api"
	"github.com/pkg/errors"
)

// notifyBufSize размер буфера очереди уведомлений брокера.
const notifyBufSize = 256

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)

	catalog := store.NewCatalog()
	accounts := store.NewAccounts()
	riders := store.NewRiderPool()
	ledger := store.NewOrderLedger()

	notifier, waitNotifier := a.buildNotifier(notifyCtx)

	services, sErr := service.Factory(service.FactoryArgs{
		Catalog:  catalog,
		Accounts: accounts,
		Riders:   riders,
		Ledger:   ledger,
		Notifier: notifier,
	})
	if sErr != nil {
		return errors.Wrap(sErr, "app run")
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		CatalogService: services.CatalogService,
		UserService:    services.UserService,
		RiderService:   services.RiderService,
		OrderService:   services.OrderService,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		// дожидаемся, пока очередь уведомлений допишется в брокер
		waitNotifier()
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// buildNotifier выбирает реализацию уведомлений: брокер, если сконфигурирован,
// иначе лог приложения. Вторым значением возвращается функция ожидания остановки.
func (a *App) buildNotifier(ctx context.Context) (service.Notifier, func()) {
	brokers := a.Config.Brokers()
	if len(brokers) == 0 {
		return notify.NewLogNotifier(a.Logger), func() {}
	}

	producer := notify.NewKafkaNotifier(brokers, a.Config.NotifyTopic, notifyBufSize)
	producer.Start(ctx)
	return producer, producer.WaitClosed
}
