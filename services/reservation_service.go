package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"room-reservation-backend/errors"
	"room-reservation-backend/models"
	"room-reservation-backend/repository"
)

// Mailer sends booking notifications. Delivery is best-effort: a failed send
// never fails the booking operation that triggered it.
type Mailer interface {
	Send(to []string, subject, body string) error
}

type ReservationService struct {
	repos        repository.Factory
	availability *AvailabilityService
	mailer       Mailer
	hotelEmail   string
	now          func() time.Time
}

func NewReservationService(repos repository.Factory, availability *AvailabilityService, mailer Mailer, hotelEmail string) *ReservationService {
	return &ReservationService{
		repos:        repos,
		availability: availability,
		mailer:       mailer,
		hotelEmail:   hotelEmail,
		now:          time.Now,
	}
}

type ReservationInput struct {
	Arrival    time.Time
	Departure  time.Time
	GuestName  string
	GuestEmail string
	GuestTel   string
	Remark     string
	RoomID     uuid.UUID
}

// GuestUpdate carries the guest fields of a reservation. Dates and room are
// immutable after creation.
type GuestUpdate struct {
	GuestName  string
	GuestEmail string
	GuestTel   string
	Remark     string
}

func (s *ReservationService) GetAll(ctx context.Context) ([]models.Reservation, error) {
	reservations, err := s.repos.New().Reservations().GetAll(ctx)
	if err != nil {
		return nil, errors.Internal("failed to load reservations", err)
	}
	return reservations, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	reservation, err := s.repos.New().Reservations().GetByID(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("reservation not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load reservation", err)
	}
	return reservation, nil
}

func (s *ReservationService) GetWithRoom(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	reservation, err := s.repos.New().Reservations().GetWithRoom(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("reservation not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load reservation", err)
	}
	return reservation, nil
}

// Create books a room for the given range. The room's entire reservation set
// is loaded and checked before the insert. The check is not serialized with
// the commit: two concurrent bookings for overlapping ranges can both pass it
// before either commits, and both rows are then stored. Closing that window
// would take a per-room range lock or a serializable transaction.
func (s *ReservationService) Create(ctx context.Context, in ReservationInput) (*models.Reservation, error) {
	if err := s.availability.ValidateDateRange(in.Arrival, in.Departure); err != nil {
		return nil, err
	}

	uow := s.repos.New()
	room, err := uow.Rooms().GetWithReservations(ctx, in.RoomID)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("room not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load room", err)
	}

	arrival, departure := Date(in.Arrival), Date(in.Departure)
	if !IsAvailable(room.Reservations, arrival, departure) {
		return nil, errors.Conflict("room is already reserved for the requested dates")
	}

	reservation := &models.Reservation{
		ID:          uuid.New(),
		DateCreated: s.now().UTC(),
		Arrival:     datatypes.Date(arrival),
		Departure:   datatypes.Date(departure),
		GuestName:   in.GuestName,
		GuestEmail:  in.GuestEmail,
		GuestTel:    in.GuestTel,
		Remark:      in.Remark,
		Price:       room.Price * float64(Nights(arrival, departure)),
		RoomID:      room.ID,
	}
	if err := reservation.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "invalid reservation", err)
	}

	uow.Reservations().Create(reservation)
	if err := uow.Save(ctx); err != nil {
		return nil, errors.Internal("failed to save reservation", err)
	}

	s.sendConfirmation(reservation, room)
	return reservation, nil
}

// Update changes the guest details of an existing reservation.
func (s *ReservationService) Update(ctx context.Context, id uuid.UUID, in GuestUpdate) (*models.Reservation, error) {
	uow := s.repos.New()
	reservation, err := uow.Reservations().GetWithRoom(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NotFound("reservation not found")
	}
	if err != nil {
		return nil, errors.Internal("failed to load reservation", err)
	}

	reservation.GuestName = in.GuestName
	reservation.GuestEmail = in.GuestEmail
	reservation.GuestTel = in.GuestTel
	reservation.Remark = in.Remark
	if err := reservation.Validate(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "invalid reservation", err)
	}

	uow.Reservations().Update(reservation)
	if err := uow.Save(ctx); err != nil {
		return nil, errors.Internal("failed to update reservation", err)
	}

	s.sendGuestDetailsUpdate(reservation)
	return reservation, nil
}

func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.repos.New()
	reservation, err := uow.Reservations().GetWithRoom(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFound("reservation not found")
	}
	if err != nil {
		return errors.Internal("failed to load reservation", err)
	}

	uow.Reservations().Delete(reservation)
	if err := uow.Save(ctx); err != nil {
		return errors.Internal("failed to delete reservation", err)
	}

	s.sendCancellation(reservation)
	return nil
}

const dateLayout = "2006-01-02"

func (s *ReservationService) sendConfirmation(reservation *models.Reservation, room *models.Room) {
	guestBody := fmt.Sprintf(
		"Dear %s,\n\nThank you for choosing us. Your booking details are the following:\n\n"+
			"Reservation ID: %s\nYour room: %s\nArrival date: %s\nDeparture date: %s\n"+
			"Price per night: %.2f EUR\nTotal price: %.2f EUR\n\nBest regards,\nRoom Reservations\n",
		reservation.GuestName, reservation.ID, room.Name,
		reservation.ArrivalTime().Format(dateLayout), reservation.DepartureTime().Format(dateLayout),
		room.Price, reservation.Price,
	)
	s.send([]string{reservation.GuestEmail}, fmt.Sprintf("Your booking confirmation, ID: %s", reservation.ID), guestBody)

	hotelBody := fmt.Sprintf(
		"New reservation details:\n\nReservation ID: %s\nRoom: %s (ID: %s)\n"+
			"Arrival date: %s\nDeparture date: %s\nTotal price: %.2f EUR\n\n"+
			"Guest name: %s\nGuest email: %s\nGuest phone number: %s\nRemark: %s\n",
		reservation.ID, room.Name, room.ID,
		reservation.ArrivalTime().Format(dateLayout), reservation.DepartureTime().Format(dateLayout),
		reservation.Price,
		reservation.GuestName, reservation.GuestEmail, reservation.GuestTel, reservation.Remark,
	)
	s.send([]string{s.hotelEmail}, fmt.Sprintf("New reservation, ID: %s", reservation.ID), hotelBody)
}

func (s *ReservationService) sendGuestDetailsUpdate(reservation *models.Reservation) {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour guest details have been updated:\n\n"+
			"Guest name: %s\nGuest email: %s\nGuest phone number: %s\nRemark: %s\n\n"+
			"Reservation ID: %s\nArrival date: %s\nDeparture date: %s\n\nBest regards,\nRoom Reservations\n",
		reservation.GuestName,
		reservation.GuestName, reservation.GuestEmail, reservation.GuestTel, reservation.Remark,
		reservation.ID,
		reservation.ArrivalTime().Format(dateLayout), reservation.DepartureTime().Format(dateLayout),
	)
	s.send([]string{reservation.GuestEmail, s.hotelEmail},
		fmt.Sprintf("Updated reservation guest details, ID: %s", reservation.ID), body)
}

func (s *ReservationService) sendCancellation(reservation *models.Reservation) {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour reservation has been cancelled:\n\n"+
			"Reservation ID: %s\nArrival date: %s\nDeparture date: %s\n\nBest regards,\nRoom Reservations\n",
		reservation.GuestName, reservation.ID,
		reservation.ArrivalTime().Format(dateLayout), reservation.DepartureTime().Format(dateLayout),
	)
	s.send([]string{reservation.GuestEmail, s.hotelEmail},
		fmt.Sprintf("Cancelled reservation, ID: %s", reservation.ID), body)
}

func (s *ReservationService) send(to []string, subject, body string) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.Send(to, subject, body); err != nil {
		log.Printf("warning: failed to send %q notification: %v", subject, err)
	}
}
