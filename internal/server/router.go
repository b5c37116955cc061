package server

import (
	"net/http"
	"time"

	"questup-backend/internal/config"
	"questup-backend/internal/handlers"
	"questup-backend/internal/middleware"
	"questup-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New assembles services, handlers and routes. Shared by main and the tests.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	authService := services.NewAuthService(db, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	roomService := services.NewRoomService(db)
	questionService := services.NewQuestionService(db, cfg.VoteScoring)

	authHandler := handlers.NewAuthHandler(authService, cfg)
	roomHandler := handlers.NewRoomHandler(roomService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	adminHandler := handlers.NewAdminHandler(authService, roomService, questionService)

	teacherAuth := middleware.JWTAuth(authService)
	adminAuth := middleware.AdminAuth(cfg.AdminSecret)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Secret"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"questup": "api is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/teachers/request-access", authHandler.RequestAccess)
		auth.POST("/teachers/admin/login", authHandler.AdminLogin)
		auth.GET("/teachers/requests", adminAuth, adminHandler.ListRequests)
		auth.POST("/teachers/approve/:id", adminAuth, adminHandler.ApproveTeacher)

		admin := auth.Group("/admin")
		admin.Use(adminAuth)
		{
			admin.GET("/teachers/:id/rooms", adminHandler.ListTeacherRooms)
			admin.GET("/rooms/:id/questions/download", adminHandler.DownloadRoomQuestions)
		}
	}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", teacherAuth, roomHandler.CreateRoom)
		rooms.GET("/my-rooms", teacherAuth, roomHandler.MyRooms)
		rooms.GET("/:id", teacherAuth, roomHandler.GetRoom)
		rooms.POST("/join", roomHandler.Join)
		rooms.POST("/:id/close", teacherAuth, roomHandler.CloseRoom)

		rooms.POST("/:id/questions", questionHandler.PostQuestion)
		rooms.GET("/:id/questions", questionHandler.ListQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.POST("/:id/solve", teacherAuth, questionHandler.MarkSolved)
		questions.POST("/:id/vote", questionHandler.CastVote)
	}

	return r
}
