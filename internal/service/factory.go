package service

import "fmt"

type AppServices struct {
	CatalogService *CatalogService
	UserService    *UserService
	RiderService   *RiderService
	OrderService   *OrderService
}

type FactoryArgs struct {
	Catalog  CatalogRepository
	Accounts AccountRepository
	Riders   RiderRepository
	Ledger   OrderRepository
	Notifier Notifier
}

func Factory(args FactoryArgs) (*AppServices, error) {
	orderService, orderServiceErr := NewOrderService(
		args.Catalog,
		args.Accounts,
		args.Riders,
		args.Ledger,
		args.Notifier,
	)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	return &AppServices{
		CatalogService: NewCatalogService(args.Catalog),
		UserService:    NewUserService(args.Accounts),
		RiderService:   NewRiderService(args.Riders),
		OrderService:   orderService,
	}, nil
}
