package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"alumniconnect-api/config"
	"alumniconnect-api/controllers"
	"alumniconnect-api/middleware"
	"alumniconnect-api/realtime"
	"alumniconnect-api/repositories"
	"alumniconnect-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, gateway *realtime.Gateway, cfg *config.Config) {
	// Services
	mentorshipRepo := repositories.NewMentorshipRepository(db)
	mentorshipService := services.NewMentorshipService(mentorshipRepo)
	directoryService := services.NewDirectoryService(db)

	// Controllers
	mentorshipController := controllers.NewMentorshipController(mentorshipService)
	chatController := controllers.NewChatController(gateway)
	directoryController := controllers.NewDirectoryController(directoryService)
	wsController := controllers.NewWSController(hub, gateway, cfg.AllowedOrigins)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Realtime endpoint; rooms are joined via the join_room event, so the
	// upgrade itself is unauthenticated (matching the browser client)
	r.GET("/ws", wsController.Connect)

	// REST surface
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		mentorship := api.Group("/mentorship")
		{
			mentorship.POST("/request", mentorshipController.SendRequest)
			mentorship.GET("/my-requests", mentorshipController.GetMyRequests)
			mentorship.PUT("/update/:id", mentorshipController.UpdateStatus)
			mentorship.DELETE("/remove/:id", mentorshipController.RemoveRequest)
		}

		api.GET("/chat/:otherUserId", chatController.GetHistory)

		users := api.Group("/users")
		{
			users.GET("", directoryController.ListUsers)
			users.GET("/:id", directoryController.GetUser)
		}
	}
}

// SetupCORS configures CORS middleware. The original frontend is served
// from a separate origin, so the API answers preflights permissively.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
