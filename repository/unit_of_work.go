package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormFactory builds gorm-backed units of work over one shared connection pool.
type GormFactory struct {
	db *gorm.DB
}

func NewFactory(db *gorm.DB) *GormFactory {
	return &GormFactory{db: db}
}

func (f *GormFactory) New() UnitOfWork {
	uow := &gormUnitOfWork{db: f.db}
	uow.rooms = &roomRepository{uow: uow}
	uow.reservations = &reservationRepository{uow: uow}
	uow.images = &imageRepository{uow: uow}
	uow.users = &userRepository{uow: uow}
	return uow
}

// gormUnitOfWork queues write operations and flushes them inside one
// db.Transaction. Reads go straight to the database.
type gormUnitOfWork struct {
	db      *gorm.DB
	pending []func(tx *gorm.DB) error

	rooms        *roomRepository
	reservations *reservationRepository
	images       *imageRepository
	users        *userRepository
}

func (u *gormUnitOfWork) Rooms() RoomRepository               { return u.rooms }
func (u *gormUnitOfWork) Reservations() ReservationRepository { return u.reservations }
func (u *gormUnitOfWork) Images() ImageRepository             { return u.images }
func (u *gormUnitOfWork) Users() UserRepository               { return u.users }

func (u *gormUnitOfWork) enqueue(op func(tx *gorm.DB) error) {
	u.pending = append(u.pending, op)
}

func (u *gormUnitOfWork) Save(ctx context.Context) error {
	if len(u.pending) == 0 {
		return nil
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range u.pending {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// keep the queue so the caller can retry the whole commit
		return err
	}

	u.pending = nil
	return nil
}
