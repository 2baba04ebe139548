package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"room-reservation-backend/services"
	"room-reservation-backend/utils"
)

type ReservationController struct {
	reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{reservations: reservations}
}

type ReservationCreateInput struct {
	Arrival    string `json:"arrival" binding:"required"`
	Departure  string `json:"departure" binding:"required"`
	GuestName  string `json:"guestName" binding:"required,max=50"`
	GuestEmail string `json:"guestEmail" binding:"required,max=319,email"`
	GuestTel   string `json:"guestTel" binding:"required,max=40"`
	Remark     string `json:"remark" binding:"max=200"`
	RoomID     string `json:"roomId" binding:"required,uuid"`
}

type ReservationUpdateInput struct {
	GuestName  string `json:"guestName" binding:"required,max=50"`
	GuestEmail string `json:"guestEmail" binding:"required,max=319,email"`
	GuestTel   string `json:"guestTel" binding:"required,max=40"`
	Remark     string `json:"remark" binding:"max=200"`
}

func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.reservations.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponses(reservations))
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := rc.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponse(*reservation))
}

func (rc *ReservationController) GetReservationWithRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := rc.reservations.GetWithRoom(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponse(*reservation))
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input ReservationCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	arrival, err := parseDate(input.Arrival)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	departure, err := parseDate(input.Departure)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	roomID, err := uuid.Parse(input.RoomID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	reservation, err := rc.reservations.Create(c.Request.Context(), services.ReservationInput{
		Arrival:    arrival,
		Departure:  departure,
		GuestName:  input.GuestName,
		GuestEmail: input.GuestEmail,
		GuestTel:   input.GuestTel,
		Remark:     input.Remark,
		RoomID:     roomID,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toReservationResponse(*reservation))
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var input ReservationUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	reservation, err := rc.reservations.Update(c.Request.Context(), id, services.GuestUpdate{
		GuestName:  input.GuestName,
		GuestEmail: input.GuestEmail,
		GuestTel:   input.GuestTel,
		Remark:     input.Remark,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponse(*reservation))
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	if err := rc.reservations.Delete(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
