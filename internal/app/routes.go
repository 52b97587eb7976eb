package app

import (
	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	"github.com/BeldiMariem/ToDo-List-App/internal/cache"
	"github.com/BeldiMariem/ToDo-List-App/internal/config"
	"github.com/BeldiMariem/ToDo-List-App/internal/handlers"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, authHandler)

	notifRepo := repo.NewPGNotificationRepo(db)
	notifSvc := service.NewNotificationService(notifRepo, rdb)

	boardRepo := repo.NewPGBoardRepo(db)
	memberRepo := repo.NewPGMemberRepo(db)
	listRepo := repo.NewPGListRepo(db)
	cardRepo := repo.NewPGCardRepo(db)
	commentRepo := repo.NewPGCommentRepo(db)
	activityRepo := repo.NewPGActivityRepo(db)

	boardCache := cache.NewBoardCache(rdb, cfg.Redis.DefaultTTL.Duration())
	boardSvc := service.NewBoardService(boardRepo, memberRepo, userRepo, notifSvc, boardCache)
	listSvc := service.NewListService(listRepo, boardRepo, memberRepo, userRepo, notifSvc)
	cardSvc := service.NewCardService(cardRepo, listRepo, boardRepo, memberRepo, userRepo, notifSvc)
	commentSvc := service.NewCommentService(commentRepo, cardRepo, listRepo, boardRepo, memberRepo, userRepo, notifSvc)
	activitySvc := service.NewActivityService(activityRepo, userRepo, notifSvc)

	protected := api.Group("", auth.RequireSession(sessionStore))
	registerUserRoutes(protected, handlers.NewUserHandler(userSvc, sessionStore))
	registerBoardRoutes(protected, handlers.NewBoardHandler(boardSvc))
	registerListRoutes(protected, handlers.NewListHandler(listSvc))
	registerCardRoutes(protected, handlers.NewCardHandler(cardSvc))
	registerCommentRoutes(protected, handlers.NewCommentHandler(commentSvc))
	registerActivityRoutes(protected, handlers.NewActivityHandler(activitySvc))
	registerNotificationRoutes(protected, handlers.NewNotificationHandler(notifSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "ToDo List API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.GET("/users", h.List)
	api.PUT("/users/profile", h.UpdateProfile)
	api.PUT("/users/password", h.UpdatePassword)
	api.DELETE("/users", h.DeleteAccount)
}

func registerBoardRoutes(api *gin.RouterGroup, h *handlers.BoardHandler) {
	api.POST("/boards", h.Create)
	api.GET("/boards", h.List)
	api.GET("/boards/:id", h.GetByID)
	api.GET("/boards/:id/members", h.Members)
	api.PUT("/boards/:id", h.Update)
	api.DELETE("/boards/:id", h.Delete)
	api.DELETE("/boards/:id/members/:userId", h.RemoveMember)
}

func registerListRoutes(api *gin.RouterGroup, h *handlers.ListHandler) {
	api.POST("/lists", h.Create)
	api.GET("/lists/board/:boardId", h.ListByBoard)
	api.PUT("/lists/:id", h.Update)
	api.DELETE("/lists/:id", h.Delete)
}

func registerCardRoutes(api *gin.RouterGroup, h *handlers.CardHandler) {
	api.POST("/cards", h.Create)
	api.GET("/cards/list/:listId", h.ListByList)
	api.PUT("/cards/:id", h.Update)
	api.DELETE("/cards/:id", h.Delete)
}

func registerCommentRoutes(api *gin.RouterGroup, h *handlers.CommentHandler) {
	api.POST("/comments", h.Create)
	api.GET("/comments/card/:cardId", h.ListByCard)
	api.DELETE("/comments/:id", h.Delete)
}

func registerActivityRoutes(api *gin.RouterGroup, h *handlers.ActivityHandler) {
	api.POST("/activities", h.Create)
	api.GET("/activities", h.List)
	api.GET("/activities/date-range", h.ListByDateRange)
	api.GET("/activities/:id", h.GetByID)
	api.PUT("/activities/:id", h.Update)
	api.DELETE("/activities/:id", h.Delete)
	api.POST("/activities/:id/participants/:userId", h.AddParticipant)
	api.DELETE("/activities/:id/participants/:userId", h.RemoveParticipant)
}

func registerNotificationRoutes(api *gin.RouterGroup, h *handlers.NotificationHandler) {
	api.GET("/notifications", h.List)
	api.POST("/notifications/:id/mark-read", h.MarkRead)
}
