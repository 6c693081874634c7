package main

import (
	_ "time/tzdata"

	"mob-social/pkg/cache"
	"mob-social/pkg/config"
	"mob-social/pkg/database"
	"mob-social/pkg/logger"
	"mob-social/pkg/queue"
	socialApp "mob-social/services/social/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Mob Social API
// @version         1.0
// @description     Social profiles, friends, follows and notifications.
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	opts := []logger.Option{logger.WithService("social")}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSON())
	}
	log := logger.New(opts...)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	socialApp.Run(cfg, log, db, redisClient, queueClient)
}
