package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Reservation struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey;column:reservation_id"`
	DateCreated time.Time      `json:"dateCreated" gorm:"column:date_created"`
	Arrival     datatypes.Date `json:"-" gorm:"type:date"`
	Departure   datatypes.Date `json:"-" gorm:"type:date"`
	GuestName   string         `json:"guestName" gorm:"column:guest_name;size:50" validate:"required,max=50"`
	GuestEmail  string         `json:"guestEmail" gorm:"column:guest_email;size:319" validate:"required,max=319,email"`
	GuestTel    string         `json:"guestTel" gorm:"column:guest_tel;size:40" validate:"required,max=40,phone"`
	Remark      string         `json:"remark,omitempty" gorm:"size:200" validate:"max=200"`
	Price       float64        `json:"price"`

	RoomID uuid.UUID `json:"roomId" gorm:"type:char(36);column:room_id;index" validate:"required"`
	Room   *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Reservation) TableName() string { return "reservation" }

func (r *Reservation) Validate() error {
	return validate.Struct(r)
}

// ArrivalTime and DepartureTime expose the date-only columns as time.Time
// for interval arithmetic.
func (r *Reservation) ArrivalTime() time.Time   { return time.Time(r.Arrival) }
func (r *Reservation) DepartureTime() time.Time { return time.Time(r.Departure) }

// Nights is the number of nights between arrival and departure.
func (r *Reservation) Nights() int {
	return int(r.DepartureTime().Sub(r.ArrivalTime()).Hours() / 24)
}
