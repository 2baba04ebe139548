package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"room-reservation-backend/models"
)

type userRepository struct {
	uow *gormUnitOfWork
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.uow.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
