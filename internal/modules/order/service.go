package order

import (
	"context"
	"fmt"
	"log"

	"hotelops/internal/domain"

	"github.com/shopspring/decimal"
)

type Service struct {
	orders   orderRepo
	stays    accommodationReader
	products productReader
	services serviceReader
	stock    stockDecrementer
	tx       txRunner
}

func NewService(orders orderRepo, stays accommodationReader, products productReader, services serviceReader, stock stockDecrementer, tx txRunner) *Service {
	return &Service{
		orders:   orders,
		stays:    stays,
		products: products,
		services: services,
		stock:    stock,
		tx:       tx,
	}
}

// OrderProduct records a product purchase during a stay and takes the
// quantity off the building's stock. When the stock row is missing or
// holds fewer units than ordered, the order is still accepted and the
// stock is left unchanged; that matches the behavior the desk staff rely
// on today and is only logged, not rejected.
func (s *Service) OrderProduct(ctx context.Context, accommodationID int64, req OrderProductRequest) (*domain.ProductOrder, error) {
	if req.Quantity < 1 {
		return nil, ErrValidation
	}

	var o *domain.ProductOrder
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.stays.GetByID(ctx, accommodationID)
		if err != nil {
			return err
		}
		buildingID, err := buildingOf(a)
		if err != nil {
			return err
		}

		p, err := s.products.GetByID(ctx, req.ProductID)
		if err != nil {
			return err
		}

		o = &domain.ProductOrder{
			AccommodationID: a.ID,
			ProductID:       p.ID,
			OrderDate:       domain.Today(),
			Quantity:        req.Quantity,
			TotalPrice:      p.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
		}
		if err := s.orders.CreateProductOrder(ctx, o); err != nil {
			return err
		}

		applied, err := s.stock.DecrementStock(ctx, buildingID, p.ID, req.Quantity)
		if err != nil {
			return err
		}
		if !applied {
			log.Printf("order_stock_skipped building_id=%d product_id=%d quantity=%d", buildingID, p.ID, req.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// OrderService records a service purchase during a stay. Services have no
// stock; the price is taken as-is.
func (s *Service) OrderService(ctx context.Context, accommodationID int64, req OrderServiceRequest) (*domain.ServiceOrder, error) {
	var o *domain.ServiceOrder
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.stays.GetByID(ctx, accommodationID)
		if err != nil {
			return err
		}

		svc, err := s.services.GetByID(ctx, req.ServiceID)
		if err != nil {
			return err
		}

		o = &domain.ServiceOrder{
			AccommodationID: a.ID,
			ServiceID:       svc.ID,
			OrderDate:       domain.Today(),
			TotalPrice:      svc.Price,
		}
		return s.orders.CreateServiceOrder(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) ListProductOrders(ctx context.Context, accommodationID int64) ([]domain.ProductOrder, error) {
	return s.orders.ListProductOrders(ctx, accommodationID)
}

func (s *Service) ListServiceOrders(ctx context.Context, accommodationID int64) ([]domain.ServiceOrder, error) {
	return s.orders.ListServiceOrders(ctx, accommodationID)
}

func buildingOf(a *domain.Accommodation) (int64, error) {
	if a.Booking == nil || a.Booking.Room == nil {
		return 0, fmt.Errorf("accommodation %d loaded without booking/room", a.ID)
	}
	return a.Booking.Room.BuildingID, nil
}
