package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"room-reservation-backend/errors"
	"room-reservation-backend/models"
	"room-reservation-backend/repository"
)

// Date truncates t to midnight UTC. All booking interval arithmetic is done on
// these date-only values.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights is the number of nights between two dates.
func Nights(arrival, departure time.Time) int {
	return int(Date(departure).Sub(Date(arrival)).Hours() / 24)
}

// IsAvailable reports whether the date range [arrival, departure) overlaps none
// of the given reservations. Both intervals are half-open, so a departure on
// the same day as an existing arrival (and vice versa) does not count as an
// overlap: checkout morning and check-in afternoon can share a date.
func IsAvailable(reservations []models.Reservation, arrival, departure time.Time) bool {
	arrival, departure = Date(arrival), Date(departure)
	for _, r := range reservations {
		if r.DepartureTime().After(arrival) && r.ArrivalTime().Before(departure) {
			return false
		}
	}
	return true
}

// FilterAvailableRooms keeps the rooms whose full reservation set leaves the
// requested range free. Rooms must be loaded with their reservations; the
// input order (by name, per the gateway contract) is preserved.
func FilterAvailableRooms(rooms []models.Room, arrival, departure time.Time) []models.Room {
	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if IsAvailable(room.Reservations, arrival, departure) {
			available = append(available, room)
		}
	}
	return available
}

// RoomAvailability pairs a free room with the total price for the stay.
type RoomAvailability struct {
	Room       models.Room
	PriceTotal float64
}

// AvailabilityService answers room availability questions against live data.
type AvailabilityService struct {
	repos repository.Factory
	now   func() time.Time
}

func NewAvailabilityService(repos repository.Factory) *AvailabilityService {
	return &AvailabilityService{repos: repos, now: time.Now}
}

// ValidateDateRange enforces the date sanity rules shared by every booking
// caller: arrival strictly before departure, and arrival no earlier than
// today (UTC).
func (s *AvailabilityService) ValidateDateRange(arrival, departure time.Time) error {
	arrival, departure = Date(arrival), Date(departure)
	if !arrival.Before(departure) {
		return errors.InvalidInput("arrival date must be before the departure date")
	}
	if today := Date(s.now().UTC()); arrival.Before(today) {
		return errors.InvalidInput("arrival date must be today or later")
	}
	return nil
}

// IsRoomAvailable checks one room for the requested range against its entire
// reservation set.
func (s *AvailabilityService) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, arrival, departure time.Time) (bool, error) {
	if err := s.ValidateDateRange(arrival, departure); err != nil {
		return false, err
	}

	uow := s.repos.New()
	room, err := uow.Rooms().GetWithReservations(ctx, roomID)
	if stderrors.Is(err, repository.ErrNotFound) {
		return false, errors.NotFound("room not found")
	}
	if err != nil {
		return false, errors.Internal("failed to load room", err)
	}

	return IsAvailable(room.Reservations, arrival, departure), nil
}

// AvailableRooms lists every room free for the requested range, ordered by
// name and priced for the whole stay.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, arrival, departure time.Time) ([]RoomAvailability, error) {
	if err := s.ValidateDateRange(arrival, departure); err != nil {
		return nil, err
	}

	uow := s.repos.New()
	rooms, err := uow.Rooms().GetAllWithDetails(ctx)
	if err != nil {
		return nil, errors.Internal("failed to load rooms", err)
	}

	nights := Nights(arrival, departure)
	free := FilterAvailableRooms(rooms, arrival, departure)
	result := make([]RoomAvailability, 0, len(free))
	for _, room := range free {
		result = append(result, RoomAvailability{
			Room:       room,
			PriceTotal: room.Price * float64(nights),
		})
	}
	return result, nil
}
