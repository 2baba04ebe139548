package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"room-reservation-backend/errors"
	"room-reservation-backend/models"
	"room-reservation-backend/repository"
)

type RoomService struct {
	repos repository.Factory
	files *FileService
}

func NewRoomService(repos repository.Factory, files *FileService) *RoomService {
	return &RoomService{repos: repos, files: files}
}

func (s *RoomService) GetAll(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.repos.New().Rooms().GetAll(ctx)
	if err != nil {
		return nil, errors.Internal("failed to load rooms", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := s.repos.New().Rooms().GetByID(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("room not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load room", err)
	}
	return room, nil
}

func (s *RoomService) GetWithReservations(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := s.repos.New().Rooms().GetWithReservations(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("room not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load room", err)
	}
	return room, nil
}

func (s *RoomService) GetWithImages(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := s.repos.New().Rooms().GetWithImages(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("room not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load room", err)
	}
	return room, nil
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	room.ID = uuid.New()
	if err := room.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "invalid room", err)
	}

	uow := s.repos.New()
	uow.Rooms().Create(room)
	if err := uow.Save(ctx); err != nil {
		return nil, errors.Internal("failed to save room", err)
	}
	return room, nil
}

type RoomUpdate struct {
	Name             string
	Price            float64
	DescriptionShort string
	DescriptionLong  string
}

func (s *RoomService) Update(ctx context.Context, id uuid.UUID, in RoomUpdate) (*models.Room, error) {
	uow := s.repos.New()
	room, err := uow.Rooms().GetByID(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("room not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load room", err)
	}

	room.Name = in.Name
	room.Price = in.Price
	room.DescriptionShort = in.DescriptionShort
	room.DescriptionLong = in.DescriptionLong
	if err := room.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "invalid room", err)
	}

	uow.Rooms().Update(room)
	if err := uow.Save(ctx); err != nil {
		return nil, errors.Internal("failed to update room", err)
	}
	return room, nil
}

// CanDelete reports whether the room may be deleted. The reservation list is
// queried fresh on every call; a room with any reservation is blocked.
func (s *RoomService) CanDelete(ctx context.Context, id uuid.UUID) error {
	uow := s.repos.New()
	if _, err := uow.Rooms().GetByID(ctx, id); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NotFound("room not found")
		}
		return errors.Internal("failed to load room", err)
	}

	reservations, err := uow.Reservations().ForRoom(ctx, id)
	if err != nil {
		return errors.Internal("failed to load reservations", err)
	}
	if len(reservations) > 0 {
		return errors.Conflict("cannot delete room: it has dependent reservations, delete those first")
	}
	return nil
}

// Delete removes a room after its deletion guard passes: no dependent
// reservations, and all of its images cleaned from disk and store first.
func (s *RoomService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.repos.New()
	room, err := uow.Rooms().GetByID(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFound("room not found")
	}
	if err != nil {
		return errors.Internal("failed to load room", err)
	}

	reservations, err := uow.Reservations().ForRoom(ctx, id)
	if err != nil {
		return errors.Internal("failed to load reservations", err)
	}
	if len(reservations) > 0 {
		return errors.Conflict("cannot delete room: it has dependent reservations, delete those first")
	}

	if err := s.files.DeleteImagesForRoom(ctx, id); err != nil {
		return err
	}

	uow.Rooms().Delete(room)
	if err := uow.Save(ctx); err != nil {
		return errors.Internal("failed to delete room", err)
	}
	return nil
}
