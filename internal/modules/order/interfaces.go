package order

import (
	"context"

	"hotelops/internal/domain"
)

type orderRepo interface {
	CreateProductOrder(ctx context.Context, o *domain.ProductOrder) error
	CreateServiceOrder(ctx context.Context, o *domain.ServiceOrder) error
	ListProductOrders(ctx context.Context, accommodationID int64) ([]domain.ProductOrder, error)
	ListServiceOrders(ctx context.Context, accommodationID int64) ([]domain.ServiceOrder, error)
}

// accommodationReader must return the accommodation with its booking and
// the booking's room preloaded; the room carries the building the stock
// decrement targets.
type accommodationReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
}

type productReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type serviceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type stockDecrementer interface {
	DecrementStock(ctx context.Context, buildingID, productID int64, qty int) (bool, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
