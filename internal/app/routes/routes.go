package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/backend/internal/app/controllers"
	"github.com/mentorlink/backend/internal/middleware"
	"github.com/mentorlink/backend/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	collegeMentorController *controllers.CollegeMentorController,
	industryMentorController *controllers.IndustryMentorController,
	messageController *controllers.MessageController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	students := v1.Group("/students")
	{
		students.POST("/register", studentController.Register)
		students.POST("/login", studentController.Login)
		students.GET("", studentController.List)
		students.GET("/:id", studentController.GetByID)
	}

	collegeMentors := v1.Group("/college-mentors")
	{
		collegeMentors.POST("/register", collegeMentorController.Register)
		collegeMentors.POST("/login", collegeMentorController.Login)
		collegeMentors.GET("", collegeMentorController.List)
		collegeMentors.GET("/:id", collegeMentorController.GetByID)
	}

	industryMentors := v1.Group("/industry-mentors")
	{
		industryMentors.POST("/register", industryMentorController.Register)
		industryMentors.POST("/login", industryMentorController.Login)
		industryMentors.GET("", industryMentorController.List)
		industryMentors.GET("/:id", industryMentorController.GetByID)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/college-mentors/:id/students", collegeMentorController.AssignedStudents)
		authenticated.GET("/industry-mentors/:id/students", industryMentorController.AssignedStudents)

		messages := authenticated.Group("/messages")
		{
			messages.POST("/send", messageController.Send)
			// History lookups carry the pair in the body, hence POST.
			messages.POST("/get", messageController.GetConversation)
		}

		// Real-time chat; the upgraded connection joins the caller's room.
		authenticated.GET("/ws", wsHandler.HandleConnection)
	}
}
