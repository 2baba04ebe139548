package models

import (
	"github.com/google/uuid"
)

type Room struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey;column:room_id"`
	Name             string    `json:"name" gorm:"size:50" validate:"required,max=50"`
	Price            float64   `json:"price" validate:"gte=0"`
	DescriptionShort string    `json:"descriptionShort" gorm:"column:description_short;size:100" validate:"required,max=100"`
	DescriptionLong  string    `json:"descriptionLong,omitempty" gorm:"column:description_long;size:500" validate:"max=500"`

	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:RoomID"`
	Images       []Image       `json:"images,omitempty" gorm:"foreignKey:RoomID"`
}

func (Room) TableName() string { return "room" }

func (r *Room) Validate() error {
	return validate.Struct(r)
}
