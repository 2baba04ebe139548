package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"room-reservation-backend/models"
)

type reservationRepository struct {
	uow *gormUnitOfWork
}

func (r *reservationRepository) GetAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.uow.db.WithContext(ctx).Order("date_created").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.uow.db.WithContext(ctx).First(&reservation, "reservation_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) GetWithRoom(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.uow.db.WithContext(ctx).Preload("Room").First(&reservation, "reservation_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ForRoom(ctx context.Context, roomID uuid.UUID) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.uow.db.WithContext(ctx).Where("room_id = ?", roomID).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) Create(reservation *models.Reservation) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Create(reservation).Error
	})
}

func (r *reservationRepository) Update(reservation *models.Reservation) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Save(reservation).Error
	})
}

func (r *reservationRepository) Delete(reservation *models.Reservation) {
	r.uow.enqueue(func(tx *gorm.DB) error {
		return tx.Delete(&models.Reservation{}, "reservation_id = ?", reservation.ID).Error
	})
}
