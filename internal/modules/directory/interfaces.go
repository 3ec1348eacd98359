package directory

import (
	"context"

	"hotelops/internal/domain"
)

type clientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

type addressRepo interface {
	Create(ctx context.Context, a *domain.Address) error
	List(ctx context.Context) ([]domain.Address, error)
}

type buildingRepo interface {
	Create(ctx context.Context, b *domain.Building) error
	GetByID(ctx context.Context, id int64) (*domain.Building, error)
	List(ctx context.Context) ([]domain.Building, error)
}

type roomTypeRepo interface {
	Create(ctx context.Context, rt *domain.RoomType) error
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
	List(ctx context.Context) ([]domain.RoomType, error)
}

type roomRepo interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByBuilding(ctx context.Context, buildingID int64) ([]domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	Delete(ctx context.Context, id int64) error
}

type productRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
}

type serviceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	List(ctx context.Context) ([]domain.Service, error)
}
