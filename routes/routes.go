package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"room-reservation-backend/controllers"
	"room-reservation-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	ic *controllers.ImageController,
	ac *controllers.AuthController,
	tokenKey []byte,
	uploadsDir string,
) *gin.Engine {
	r := gin.Default()
	r.Static("/images", uploadsDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.Auth(tokenKey)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("", ac.Login)
		}

		rooms := api.Group("/room")
		{
			rooms.GET("", rc.GetAllRooms)
			rooms.GET("/availability", rc.GetAvailableRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.GET("/:id/availability", rc.IsRoomAvailable)
			rooms.GET("/:id/image", rc.GetRoomWithImages)
			rooms.GET("/:id/reservation", auth, rc.GetRoomWithReservations)
			rooms.POST("", auth, rc.CreateRoom)
			rooms.PUT("/:id", auth, rc.UpdateRoom)
			rooms.DELETE("/:id", auth, rc.DeleteRoom)
		}

		reservations := api.Group("/reservation")
		{
			reservations.GET("", auth, resc.GetAllReservations)
			reservations.GET("/:id", resc.GetReservationByID)
			reservations.GET("/:id/room", resc.GetReservationWithRoom)
			reservations.POST("", resc.CreateReservation)
			reservations.PUT("/:id", auth, resc.UpdateReservation)
			reservations.DELETE("/:id", auth, resc.DeleteReservation)
		}

		images := api.Group("/image", auth)
		{
			images.GET("", ic.GetAllImages)
			images.GET("/:id", ic.GetImageByID)
			images.POST("", ic.UploadImages)
			images.DELETE("/:id", ic.DeleteImage)
			images.DELETE("/room/:roomId", ic.DeleteImagesForRoom)
		}
	}

	return r
}
