package review

import (
	"context"

	"hotelops/internal/domain"
)

type Service struct {
	reviews reviewRepo
	clients clientReader
}

func NewService(reviews reviewRepo, clients clientReader) *Service {
	return &Service{reviews: reviews, clients: clients}
}

func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	rv := &domain.Review{
		ClientID:        req.ClientID,
		BookingID:       req.BookingID,
		ReviewText:      req.ReviewText,
		Rating:          req.Rating,
		PublicationDate: domain.Today(),
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]domain.Review, error) {
	return s.reviews.ListByClient(ctx, clientID)
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}
