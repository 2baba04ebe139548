package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"room-reservation-backend/models"
)

// ErrNotFound is returned by every GetBy* method when the identifier does not
// resolve to a row. Callers must check for it explicitly instead of relying on
// zero values.
var ErrNotFound = errors.New("record not found")

// RoomRepository is the persistence gateway for rooms. Create/Update/Delete
// only queue the mutation on the owning unit of work; nothing is durable until
// UnitOfWork.Save.
type RoomRepository interface {
	// GetAll returns all rooms ordered by name.
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	GetWithReservations(ctx context.Context, id uuid.UUID) (*models.Room, error)
	GetWithImages(ctx context.Context, id uuid.UUID) (*models.Room, error)
	// GetAllWithDetails returns all rooms ordered by name, each loaded with
	// its full reservation and image lists.
	GetAllWithDetails(ctx context.Context) ([]models.Room, error)
	Create(room *models.Room)
	Update(room *models.Room)
	Delete(room *models.Room)
}

// ReservationRepository is the persistence gateway for reservations.
type ReservationRepository interface {
	// GetAll returns all reservations ordered by creation timestamp.
	GetAll(ctx context.Context) ([]models.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	GetWithRoom(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ForRoom(ctx context.Context, roomID uuid.UUID) ([]models.Reservation, error)
	Create(reservation *models.Reservation)
	Update(reservation *models.Reservation)
	Delete(reservation *models.Reservation)
}

// ImageRepository is the persistence gateway for image metadata rows.
type ImageRepository interface {
	// GetAll returns all images ordered by owning room identifier.
	GetAll(ctx context.Context) ([]models.Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error)
	GetWithRoom(ctx context.Context, id uuid.UUID) (*models.Image, error)
	ForRoom(ctx context.Context, roomID uuid.UUID) ([]models.Image, error)
	Create(image *models.Image)
	Delete(image *models.Image)
}

// UserRepository is the persistence gateway for login users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UnitOfWork aggregates the per-entity gateways behind one object. Mutations
// issued through any gateway obtained from the same UnitOfWork are flushed by
// Save as a single all-or-nothing transaction. A UnitOfWork is scoped to one
// logical request and must not be shared across goroutines.
type UnitOfWork interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Images() ImageRepository
	Users() UserRepository
	// Save commits every queued mutation. On failure nothing is persisted and
	// the queue is kept, so the caller can retry or abandon.
	Save(ctx context.Context) error
}

// Factory builds one UnitOfWork per logical request.
type Factory interface {
	New() UnitOfWork
}
