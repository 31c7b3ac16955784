package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/thereayou/projectconnect/internal/config"
	"github.com/thereayou/projectconnect/internal/database"
	"github.com/thereayou/projectconnect/internal/handlers"
	"github.com/thereayou/projectconnect/internal/middleware"
	"github.com/thereayou/projectconnect/pkg/auth"
)

func APIEndpoints(r *gin.Engine, cfg *config.Config, db *database.Database, jwtMgr *auth.JWTManager, rdb *redis.Client) {
	authH := handlers.NewAuthHandler(db, jwtMgr, rdb)
	userH := handlers.NewUserHandler(db, cfg.OnlineWindow)
	projectH := handlers.NewProjectHandler(db)
	requestH := handlers.NewRequestHandler(db)
	messageH := handlers.NewMessageHandler(db, cfg.OnlineWindow)
	dashboardH := handlers.NewDashboardHandler(db)

	authRequired := middleware.AuthMiddleware(jwtMgr, rdb, db)

	api := r.Group("/api")
	{
		// Auth endpoints
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authH.Register)
			authGroup.POST("/login", authH.Login)
			authGroup.POST("/logout", authRequired, authH.Logout)
		}

		// Users
		users := api.Group("/users", authRequired)
		{
			users.GET("/me", userH.GetMe)
			users.PUT("/me", userH.UpdateMe)
			users.GET("/search", userH.SearchUsers)
			users.GET("/:id", userH.GetUser)
		}

		// Projects
		projects := api.Group("/projects", authRequired)
		{
			projects.POST("", projectH.CreateProject)
			projects.GET("", projectH.ListProjects)
			projects.GET("/mine", projectH.MyProjects)
			projects.GET("/:id", projectH.GetProject)
			projects.PUT("/:id", projectH.UpdateProject)
			projects.DELETE("/:id", projectH.DeleteProject)
			projects.POST("/:id/join", projectH.JoinProject)
			projects.GET("/:id/members", projectH.GetProjectMembers)
		}

		// Join requests
		requests := api.Group("/project-requests", authRequired)
		{
			requests.POST("", requestH.CreateRequest)
			requests.GET("/incoming", requestH.IncomingRequests)
			requests.GET("/outgoing", requestH.OutgoingRequests)
			requests.PUT("/:id/status", requestH.UpdateRequestStatus)
		}

		// Messages
		messages := api.Group("/messages", authRequired)
		{
			messages.POST("", messageH.SendMessage)
			messages.GET("/conversations", messageH.GetConversations)
			messages.GET("/conversation/:userId", messageH.GetConversation)
			messages.GET("/unread-count", messageH.UnreadCount)
			messages.PUT("/mark-read/:senderId", messageH.MarkRead)
		}

		// Dashboard
		api.GET("/dashboard/stats", authRequired, dashboardH.GetStats)
	}
}
