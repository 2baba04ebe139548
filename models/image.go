package models

import (
	"github.com/google/uuid"
)

type Image struct {
	ID   uuid.UUID `json:"id" gorm:"type:char(36);primaryKey;column:image_id"`
	Path string    `json:"path" gorm:"size:260" validate:"required,max=260"`

	RoomID uuid.UUID `json:"roomId" gorm:"type:char(36);column:room_id;index" validate:"required"`
	Room   *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Image) TableName() string { return "image" }

func (i *Image) Validate() error {
	return validate.Struct(i)
}
