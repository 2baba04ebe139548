package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"room-reservation-backend/models"
	"room-reservation-backend/services"
	"room-reservation-backend/utils"
)

type RoomController struct {
	rooms        *services.RoomService
	availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{rooms: rooms, availability: availability}
}

type RoomInput struct {
	Name             string  `json:"name" binding:"required,max=50"`
	Price            float64 `json:"price" binding:"gte=0"`
	DescriptionShort string  `json:"descriptionShort" binding:"required,max=100"`
	DescriptionLong  string  `json:"descriptionLong" binding:"max=500"`
}

func (rc *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := rc.rooms.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomResponses(rooms))
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := rc.rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomResponse(*room))
}

func (rc *RoomController) GetRoomWithReservations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := rc.rooms.GetWithReservations(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomResponse(*room))
}

func (rc *RoomController) GetRoomWithImages(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := rc.rooms.GetWithImages(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomResponse(*room))
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var input RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := rc.rooms.Create(c.Request.Context(), &models.Room{
		Name:             input.Name,
		Price:            input.Price,
		DescriptionShort: input.DescriptionShort,
		DescriptionLong:  input.DescriptionLong,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toRoomResponse(*room))
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	var input RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := rc.rooms.Update(c.Request.Context(), id, services.RoomUpdate{
		Name:             input.Name,
		Price:            input.Price,
		DescriptionShort: input.DescriptionShort,
		DescriptionLong:  input.DescriptionLong,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toRoomResponse(*room))
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := rc.rooms.Delete(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	arrival, err := parseDate(c.Query("arrival"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	departure, err := parseDate(c.Query("departure"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rooms, err := rc.availability.AvailableRooms(c.Request.Context(), arrival, departure)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toAvailableRoomResponses(rooms))
}

func (rc *RoomController) IsRoomAvailable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	arrival, err := parseDate(c.Query("arrival"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	departure, err := parseDate(c.Query("departure"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	available, err := rc.availability.IsRoomAvailable(c.Request.Context(), id, arrival, departure)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": available})
}
