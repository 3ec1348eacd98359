package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return translate(conn(ctx, r.db).Create(c).Error)
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return translate(conn(ctx, r.db).Save(c).Error)
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if err := conn(ctx, r.db).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	err := conn(ctx, r.db).
		Order("registration_date DESC, last_name").
		Find(&out).Error
	return out, translate(err)
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	return translate(conn(ctx, r.db).Delete(&domain.Client{}, id).Error)
}
