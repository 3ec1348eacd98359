package review

import (
	"context"

	"hotelops/internal/domain"
)

type reviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByClient(ctx context.Context, clientID int64) ([]domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
}

type clientReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}
