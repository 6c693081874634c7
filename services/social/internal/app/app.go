package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mob-social/pkg/clock"
	"mob-social/pkg/config"
	"mob-social/pkg/jwt"
	"mob-social/pkg/logger"
	"mob-social/pkg/middleware"
	"mob-social/pkg/queue"
	"mob-social/pkg/s3"
	socialHTTP "mob-social/services/social/internal/controller/http"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"
	"mob-social/services/social/internal/usecase"
	"mob-social/services/social/internal/view"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "mob-social/services/social/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	clk := clock.RealClock{}

	// Object storage is optional; without it uploads fail and stored
	// pictures resolve against MEDIA_BASE_URL.
	var storage usecase.ObjectStorage
	if s3Client, err := s3.NewClient(cfg); err != nil {
		log.Warn("S3 unavailable, picture uploads disabled: %v", err)
	} else {
		storage = s3Client
	}

	var publisher usecase.TaskPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	// Initialize Repositories
	userRepo := persistent.NewUserRepository(db)
	pictureRepo := persistent.NewPictureRepository(db)
	permalinkRepo := persistent.NewPermalinkRepository(db)
	followRepo := persistent.NewFollowRepository(db)
	friendRepo := persistent.NewFriendRepository(db)
	notificationRepo := persistent.NewNotificationRepository(db)
	teamRepo := persistent.NewTeamPageRepository(db)
	groupRepo := persistent.NewGroupPageRepository(db)
	skateMoveRepo := persistent.NewSkateMoveRepository(db)
	videoRepo := persistent.NewVideoRepository(db)

	mediaSettings := entity.MediaSettings{
		DefaultPictureURL:          cfg.DefaultPictureURL,
		DefaultUserProfileImageURL: cfg.DefaultUserProfileImageURL,
		DefaultUserProfileCoverURL: cfg.DefaultUserProfileCoverURL,
	}

	// Initialize UseCases
	mediaUseCase := usecase.NewMediaUseCase(pictureRepo, userRepo, storage, cfg.MediaBaseURL, mediaSettings, clk, log)
	followUseCase := usecase.NewFollowUseCase(followRepo, redisClient, publisher, log)
	friendUseCase := usecase.NewFriendUseCase(friendRepo, userRepo, publisher, clk, log)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, redisClient, clk, log)
	permalinkUseCase := usecase.NewPermalinkUseCase(permalinkRepo)
	dateTimeHelper := usecase.NewDateTimeHelper(cfg.DefaultTimeZone, log)

	projector := view.NewProjector(view.Collaborators{
		Media:        mediaUseCase,
		Permalinks:   permalinkUseCase,
		Dates:        dateTimeHelper,
		Follow:       followUseCase,
		Friend:       friendUseCase,
		Notification: notificationUseCase,
	}, mediaSettings, clk)

	userUseCase := usecase.NewUserUseCase(userRepo, projector, log)
	pageUseCase := usecase.NewPageUseCase(teamRepo, groupRepo, userRepo, log)
	skateMoveUseCase := usecase.NewSkateMoveUseCase(skateMoveRepo, userRepo, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, log)

	// Initialize HTTP handlers
	userHandler := socialHTTP.NewUserHandler(userUseCase, log)
	mediaHandler := socialHTTP.NewMediaHandler(mediaUseCase, log)
	followHandler := socialHTTP.NewFollowHandler(followUseCase, log)
	friendHandler := socialHTTP.NewFriendHandler(friendUseCase, projector, log)
	notificationHandler := socialHTTP.NewNotificationHandler(notificationUseCase, redisClient, jwtService, clk, log)
	pageHandler := socialHTTP.NewPageHandler(pageUseCase, log)
	skateMoveHandler := socialHTTP.NewSkateMoveHandler(skateMoveUseCase, log)
	videoHandler := socialHTTP.NewVideoHandler(videoUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	// attached after auth in each group
	rateLimit := middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute)

	// Public reads - the viewer is optional
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService), rateLimit)
	{
		public.GET("/users/:id", userHandler.GetProfile)
		public.GET("/users/:id/public", userHandler.GetMinimalProfile)
		public.GET("/users/:id/skate-moves", skateMoveHandler.ListForUser)
		public.GET("/follows/:target_type/:target_id", followHandler.GetFollowers)
		public.GET("/team-pages", pageHandler.ListTeamPages)
		public.GET("/team-pages/:id", pageHandler.GetTeamPage)
		public.GET("/group-pages/:id", pageHandler.GetGroupPage)
		public.GET("/group-pages/:id/members", pageHandler.ListMembers)
		public.GET("/skate-moves", skateMoveHandler.List)
		public.GET("/skate-moves/:id", skateMoveHandler.Get)
		public.GET("/video-albums", videoHandler.ListAlbums)
		public.GET("/video-albums/:id", videoHandler.GetAlbum)
		public.GET("/videos/:id", videoHandler.GetVideo)
	}

	// Protected routes - require authentication
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService), rateLimit)
	{
		protected.GET("/users/:id/entity", userHandler.GetEditableProfile)
		protected.PUT("/users/:id/entity", userHandler.UpdateEditableProfile)
		protected.GET("/users/:id/settings", userHandler.ListSettings)
		protected.PUT("/users/:id/settings/:name", userHandler.UpsertSetting)
		protected.PUT("/users/:id/skate-moves/:move_id", skateMoveHandler.AttachToUser)
		protected.DELETE("/users/:id/skate-moves/:move_id", skateMoveHandler.DetachFromUser)

		protected.POST("/pictures", mediaHandler.UploadPicture)

		protected.POST("/follows/:target_type/:target_id", followHandler.Follow)
		protected.DELETE("/follows/:target_type/:target_id", followHandler.Unfollow)

		protected.GET("/friends", friendHandler.ListFriends)
		protected.POST("/friends/:user_id", friendHandler.SendRequest)
		protected.PUT("/friends/:user_id/confirm", friendHandler.Confirm)
		protected.PUT("/friends/:user_id/block", friendHandler.Block)
		protected.DELETE("/friends/:user_id", friendHandler.Remove)

		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.PUT("/notifications/read", notificationHandler.MarkAllRead)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)

		protected.POST("/team-pages", pageHandler.CreateTeamPage)
		protected.PUT("/team-pages/:id", pageHandler.UpdateTeamPage)
		protected.DELETE("/team-pages/:id", pageHandler.DeleteTeamPage)
		protected.POST("/group-pages", pageHandler.CreateGroupPage)
		protected.PUT("/group-pages/:id", pageHandler.UpdateGroupPage)
		protected.DELETE("/group-pages/:id", pageHandler.DeleteGroupPage)
		protected.POST("/group-pages/:id/members", pageHandler.AddMember)
		protected.DELETE("/group-pages/:id/members/:user_id", pageHandler.RemoveMember)

		protected.POST("/skate-moves", skateMoveHandler.Create)
		protected.PUT("/skate-moves/:id", skateMoveHandler.Update)
		protected.DELETE("/skate-moves/:id", skateMoveHandler.Delete)

		protected.POST("/video-albums", videoHandler.CreateAlbum)
		protected.PUT("/video-albums/:id", videoHandler.UpdateAlbum)
		protected.DELETE("/video-albums/:id", videoHandler.DeleteAlbum)
		protected.POST("/videos", videoHandler.CreateVideo)
		protected.PUT("/videos/:id", videoHandler.UpdateVideo)
		protected.DELETE("/videos/:id", videoHandler.DeleteVideo)
	}
	// WebSocket endpoint - handles authentication internally via query parameter
	api.GET("/notifications/ws", middleware.OptionalAuthMiddleware(jwtService), rateLimit, notificationHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Turn queued social events into notifications
	if queueClient != nil {
		go func() {
			log.Info("[NOTIFICATION QUEUE] Starting consumer...")
			err := queueClient.ConsumeTasks(func(task queue.Task) error {
				log.Info("[NOTIFICATION HANDLER] Received task: type=%s, user_id=%s", task.Type, task.UserID)
				return notificationUseCase.HandleTask(task)
			})
			if err != nil {
				log.Error("[NOTIFICATION QUEUE] Error starting consumer: %v", err)
			}
		}()
	}

	// Start server in a goroutine
	go func() {
		log.Info("Social service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down social service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Social service exited")
}
