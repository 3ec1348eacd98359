package staff

import (
	"context"

	"hotelops/internal/domain"
)

type employeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	SetPositions(ctx context.Context, e *domain.Employee, positions []domain.Position) error
}

type positionRepo interface {
	Create(ctx context.Context, p *domain.Position) error
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Position, error)
	List(ctx context.Context) ([]domain.Position, error)
}

type buildingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Building, error)
}
