package models

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey;column:user_id"`
	Username     string    `json:"username" gorm:"size:40" validate:"required,max=40"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:44" validate:"required,max=44"` // base64 of a 256-bit PBKDF2 digest
	PasswordSalt string    `json:"-" gorm:"column:password_salt;size:24" validate:"required,max=24"`
}

func (User) TableName() string { return "user" }

func (u *User) Validate() error {
	return validate.Struct(u)
}
