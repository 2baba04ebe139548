package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"room-reservation-backend/models"
)

type imageRepository struct {
	uow *gormUnitOfWork
}

func (r *imageRepository) GetAll(ctx context.Context) ([]models.Image, error) {
	var images []models.Image
	if err := r.uow.db.WithContext(ctx).Order("room_id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	var image models.Image
	err := r.uow.db.WithContext(ctx).First(&image, "image_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) GetWithRoom(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	var image models.Image
	err := r.uow.db.WithContext(ctx).Preload("Room").First(&image, "image_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) ForRoom(ctx context.Context, roomID uuid.UUID) ([]models.Image, error) {
	var images []models.Image
	if err := r.uow.db.WithContext(ctx).Where("room_id = ?", roomID).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) Create(image *models.Image) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Create(image).Error
	})
}

func (r *imageRepository) Delete(image *models.Image) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Delete(&models.Image{}, "image_id = ?", image.ID).Error
	})
}
