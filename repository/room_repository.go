package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"room-reservation-backend/models"
)

type roomRepository struct {
	uow *gormUnitOfWork
}

func (r *roomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.uow.db.WithContext(ctx).Order("name").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	err := r.uow.db.WithContext(ctx).First(&room, "room_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) GetWithReservations(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	err := r.uow.db.WithContext(ctx).Preload("Reservations").First(&room, "room_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) GetWithImages(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	err := r.uow.db.WithContext(ctx).Preload("Images").First(&room, "room_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) GetAllWithDetails(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.uow.db.WithContext(ctx).
		Preload("Reservations").
		Preload("Images").
		Order("name").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Create(room *models.Room) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Create(room).Error
	})
}

func (r *roomRepository) Update(room *models.Room) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Save(room).Error
	})
}

func (r *roomRepository) Delete(room *models.Room) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Delete(&models.Room{}, "room_id = ?", room.ID).Error
	})
}
