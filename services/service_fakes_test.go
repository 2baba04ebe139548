package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"room-reservation-backend/models"
	"room-reservation-backend/repository"
)

// fakeUnitOfWork is an in-memory stand-in for the gorm-backed unit of work.
// Writes queue until Save, matching the production commit semantics, so tests
// can assert that aborted operations changed nothing.
type fakeUnitOfWork struct {
	roomsByID        map[uuid.UUID]models.Room
	reservationsByID map[uuid.UUID]models.Reservation
	imagesByID       map[uuid.UUID]models.Image
	usersByName      map[string]models.User

	pending []func()
	saveErr error
	saves   int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		roomsByID:        map[uuid.UUID]models.Room{},
		reservationsByID: map[uuid.UUID]models.Reservation{},
		imagesByID:       map[uuid.UUID]models.Image{},
		usersByName:      map[string]models.User{},
	}
}

func (u *fakeUnitOfWork) Rooms() repository.RoomRepository               { return fakeRoomRepo{u} }
func (u *fakeUnitOfWork) Reservations() repository.ReservationRepository { return fakeReservationRepo{u} }
func (u *fakeUnitOfWork) Images() repository.ImageRepository             { return fakeImageRepo{u} }
func (u *fakeUnitOfWork) Users() repository.UserRepository               { return fakeUserRepo{u} }

func (u *fakeUnitOfWork) Save(ctx context.Context) error {
	if u.saveErr != nil {
		return u.saveErr
	}
	for _, op := range u.pending {
		op()
	}
	u.pending = nil
	u.saves++
	return nil
}

func (u *fakeUnitOfWork) reservationsForRoom(roomID uuid.UUID) []models.Reservation {
	var out []models.Reservation
	for _, r := range u.reservationsByID {
		if r.RoomID == roomID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateCreated.Before(out[j].DateCreated) })
	return out
}

func (u *fakeUnitOfWork) imagesForRoom(roomID uuid.UUID) []models.Image {
	var out []models.Image
	for _, img := range u.imagesByID {
		if img.RoomID == roomID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

// fakeFactory hands out the same unit of work on every call so tests can
// inspect state after the service is done with it.
type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f fakeFactory) New() repository.UnitOfWork { return f.uow }

type fakeRoomRepo struct{ u *fakeUnitOfWork }

func (r fakeRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.u.roomsByID {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r fakeRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, ok := r.u.roomsByID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &room, nil
}

func (r fakeRoomRepo) GetWithReservations(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Reservations = r.u.reservationsForRoom(id)
	return room, nil
}

func (r fakeRoomRepo) GetWithImages(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.Images = r.u.imagesForRoom(id)
	return room, nil
}

func (r fakeRoomRepo) GetAllWithDetails(ctx context.Context) ([]models.Room, error) {
	rooms, _ := r.GetAll(ctx)
	for i := range rooms {
		rooms[i].Reservations = r.u.reservationsForRoom(rooms[i].ID)
		rooms[i].Images = r.u.imagesForRoom(rooms[i].ID)
	}
	return rooms, nil
}

func (r fakeRoomRepo) Create(room *models.Room) {
	cp := *room
	r.u.pending = append(r.u.pending, func() { r.u.roomsByID[cp.ID] = cp })
}

func (r fakeRoomRepo) Update(room *models.Room) {
	cp := *room
	r.u.pending = append(r.u.pending, func() { r.u.roomsByID[cp.ID] = cp })
}

func (r fakeRoomRepo) Delete(room *models.Room) {
	id := room.ID
	r.u.pending = append(r.u.pending, func() { delete(r.u.roomsByID, id) })
}

type fakeReservationRepo struct{ u *fakeUnitOfWork }

func (r fakeReservationRepo) GetAll(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, reservation := range r.u.reservationsByID {
		out = append(out, reservation)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateCreated.Before(out[j].DateCreated) })
	return out, nil
}

func (r fakeReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	reservation, ok := r.u.reservationsByID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &reservation, nil
}

func (r fakeReservationRepo) GetWithRoom(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	reservation, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room, ok := r.u.roomsByID[reservation.RoomID]; ok {
		reservation.Room = &room
	}
	return reservation, nil
}

func (r fakeReservationRepo) ForRoom(ctx context.Context, roomID uuid.UUID) ([]models.Reservation, error) {
	return r.u.reservationsForRoom(roomID), nil
}

func (r fakeReservationRepo) Create(reservation *models.Reservation) {
	cp := *reservation
	r.u.pending = append(r.u.pending, func() { r.u.reservationsByID[cp.ID] = cp })
}

func (r fakeReservationRepo) Update(reservation *models.Reservation) {
	cp := *reservation
	r.u.pending = append(r.u.pending, func() { r.u.reservationsByID[cp.ID] = cp })
}

func (r fakeReservationRepo) Delete(reservation *models.Reservation) {
	id := reservation.ID
	r.u.pending = append(r.u.pending, func() { delete(r.u.reservationsByID, id) })
}

type fakeImageRepo struct{ u *fakeUnitOfWork }

func (r fakeImageRepo) GetAll(ctx context.Context) ([]models.Image, error) {
	var out []models.Image
	for _, image := range r.u.imagesByID {
		out = append(out, image)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID.String() < out[j].RoomID.String() })
	return out, nil
}

func (r fakeImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	image, ok := r.u.imagesByID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &image, nil
}

func (r fakeImageRepo) GetWithRoom(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	image, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room, ok := r.u.roomsByID[image.RoomID]; ok {
		image.Room = &room
	}
	return image, nil
}

func (r fakeImageRepo) ForRoom(ctx context.Context, roomID uuid.UUID) ([]models.Image, error) {
	return r.u.imagesForRoom(roomID), nil
}

func (r fakeImageRepo) Create(image *models.Image) {
	cp := *image
	r.u.pending = append(r.u.pending, func() { r.u.imagesByID[cp.ID] = cp })
}

func (r fakeImageRepo) Delete(image *models.Image) {
	id := image.ID
	r.u.pending = append(r.u.pending, func() { delete(r.u.imagesByID, id) })
}

type fakeUserRepo struct{ u *fakeUnitOfWork }

func (r fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := r.u.usersByName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

// fakeMailer records every send instead of delivering.
type fakeMailer struct {
	subjects []string
	sendErr  error
}

func (m *fakeMailer) Send(to []string, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.subjects = append(m.subjects, subject)
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedRoom(u *fakeUnitOfWork, name string, price float64) models.Room {
	room := models.Room{
		ID:               uuid.New(),
		Name:             name,
		Price:            price,
		DescriptionShort: "A room",
	}
	u.roomsByID[room.ID] = room
	return room
}

func seedReservation(u *fakeUnitOfWork, roomID uuid.UUID, arrival, departure time.Time) models.Reservation {
	reservation := models.Reservation{
		ID:          uuid.New(),
		DateCreated: time.Now().UTC(),
		Arrival:     datatypes.Date(arrival),
		Departure:   datatypes.Date(departure),
		GuestName:   "Jane Guest",
		GuestEmail:  "jane@example.com",
		GuestTel:    "+45 12 34 56 78",
		RoomID:      roomID,
	}
	u.reservationsByID[reservation.ID] = reservation
	return reservation
}
