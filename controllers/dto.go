package controllers

import (
	"fmt"
	"time"

	"room-reservation-backend/models"
	"room-reservation-backend/services"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// Response shapes are flat projections of the entities: the Room <->
// Reservation <-> Image graph is cyclic and must not be serialized as-is.

type RoomResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Price            float64               `json:"price"`
	DescriptionShort string                `json:"descriptionShort"`
	DescriptionLong  string                `json:"descriptionLong,omitempty"`
	Reservations     []ReservationResponse `json:"reservations,omitempty"`
	Images           []ImageResponse       `json:"images,omitempty"`
}

type ReservationResponse struct {
	ID          string        `json:"id"`
	DateCreated string        `json:"dateCreated"`
	Arrival     string        `json:"arrival"`
	Departure   string        `json:"departure"`
	GuestName   string        `json:"guestName"`
	GuestEmail  string        `json:"guestEmail"`
	GuestTel    string        `json:"guestTel"`
	Remark      string        `json:"remark,omitempty"`
	Price       float64       `json:"price"`
	RoomID      string        `json:"roomId"`
	Room        *RoomResponse `json:"room,omitempty"`
}

type ImageResponse struct {
	ID     string `json:"id"`
	Path   string `json:"path"`
	RoomID string `json:"roomId"`
}

type AvailableRoomResponse struct {
	RoomResponse
	PriceTotal float64 `json:"priceTotal"`
}

type UploadSummaryResponse struct {
	Uploaded    []ImageResponse `json:"uploaded"`
	NotUploaded []string        `json:"notUploaded"`
	TotalSize   int64           `json:"totalSize"`
}

func toRoomResponse(room models.Room) RoomResponse {
	resp := RoomResponse{
		ID:               room.ID.String(),
		Name:             room.Name,
		Price:            room.Price,
		DescriptionShort: room.DescriptionShort,
		DescriptionLong:  room.DescriptionLong,
	}
	for _, reservation := range room.Reservations {
		resp.Reservations = append(resp.Reservations, toReservationResponse(reservation))
	}
	for _, image := range room.Images {
		resp.Images = append(resp.Images, toImageResponse(image))
	}
	return resp
}

func toRoomResponses(rooms []models.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toRoomResponse(room))
	}
	return resp
}

func toReservationResponse(reservation models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:          reservation.ID.String(),
		DateCreated: reservation.DateCreated.UTC().Format(time.RFC3339),
		Arrival:     reservation.ArrivalTime().Format(dateLayout),
		Departure:   reservation.DepartureTime().Format(dateLayout),
		GuestName:   reservation.GuestName,
		GuestEmail:  reservation.GuestEmail,
		GuestTel:    reservation.GuestTel,
		Remark:      reservation.Remark,
		Price:       reservation.Price,
		RoomID:      reservation.RoomID.String(),
	}
	if reservation.Room != nil {
		room := toRoomResponse(*reservation.Room)
		resp.Room = &room
	}
	return resp
}

func toReservationResponses(reservations []models.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		resp = append(resp, toReservationResponse(reservation))
	}
	return resp
}

func toImageResponse(image models.Image) ImageResponse {
	return ImageResponse{
		ID:     image.ID.String(),
		Path:   image.Path,
		RoomID: image.RoomID.String(),
	}
}

func toImageResponses(images []models.Image) []ImageResponse {
	resp := make([]ImageResponse, 0, len(images))
	for _, image := range images {
		resp = append(resp, toImageResponse(image))
	}
	return resp
}

func toUploadSummaryResponse(summary *services.UploadSummary) UploadSummaryResponse {
	return UploadSummaryResponse{
		Uploaded:    toImageResponses(summary.Uploaded),
		NotUploaded: summary.NotUploaded,
		TotalSize:   summary.TotalSize,
	}
}

func toAvailableRoomResponses(rooms []services.RoomAvailability) []AvailableRoomResponse {
	resp := make([]AvailableRoomResponse, 0, len(rooms))
	for _, ra := range rooms {
		resp = append(resp, AvailableRoomResponse{
			RoomResponse: toRoomResponse(ra.Room),
			PriceTotal:   ra.PriceTotal,
		})
	}
	return resp
}
