package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	return translate(conn(ctx, r.db).Create(e).Error)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	err := conn(ctx, r.db).
		Preload("Building").
		Preload("Positions").
		First(&e, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := conn(ctx, r.db).
		Preload("Building").
		Preload("Positions").
		Order("last_name, first_name").
		Find(&out).Error
	return out, translate(err)
}

// SetPositions replaces the employee's position assignments.
func (r *EmployeeRepository) SetPositions(ctx context.Context, e *domain.Employee, positions []domain.Position) error {
	return translate(conn(ctx, r.db).Model(e).Association("Positions").Replace(positions))
}

type PositionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) Create(ctx context.Context, p *domain.Position) error {
	return translate(conn(ctx, r.db).Create(p).Error)
}

func (r *PositionRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Position, error) {
	var out []domain.Position
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	if len(out) != len(ids) {
		return nil, ErrNotFound
	}
	return out, nil
}

func (r *PositionRepository) List(ctx context.Context) ([]domain.Position, error) {
	var out []domain.Position
	err := conn(ctx, r.db).Order("name").Find(&out).Error
	return out, translate(err)
}
