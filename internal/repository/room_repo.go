package repository

import (
	"context"

	"hotelops/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return translate(conn(ctx, r.db).Create(room).Error)
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return translate(conn(ctx, r.db).Save(room).Error)
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	err := conn(ctx, r.db).
		Preload("RoomType").
		Preload("Building").
		First(&room, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

// GetByIDLocked loads the room and takes a row lock on engines that
// support SELECT FOR UPDATE, so concurrent booking transactions on the
// same room serialize on the room row. SQLite has a single writer and
// rejects the FOR UPDATE syntax, so the clause is skipped there.
func (r *RoomRepository) GetByIDLocked(ctx context.Context, id int64) (*domain.Room, error) {
	q := conn(ctx, r.db)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var room domain.Room
	err := q.
		Preload("RoomType").
		First(&room, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (r *RoomRepository) ListByBuilding(ctx context.Context, buildingID int64) ([]domain.Room, error) {
	var out []domain.Room
	err := conn(ctx, r.db).
		Preload("RoomType").
		Where("building_id = ?", buildingID).
		Order("room_number").
		Find(&out).Error
	return out, translate(err)
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	res := conn(ctx, r.db).
		Model(&domain.Room{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return translate(conn(ctx, r.db).Delete(&domain.Room{}, id).Error)
}

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	return translate(conn(ctx, r.db).Create(rt).Error)
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	if err := conn(ctx, r.db).First(&rt, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rt, nil
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var out []domain.RoomType
	err := conn(ctx, r.db).Order("name").Find(&out).Error
	return out, translate(err)
}
