package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barberops/internal/config"
	dbpkg "github.com/BruksfildServices01/barberops/internal/db"
	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/routes"
)

func main() {

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := routes.RegisterRoutes(r, db, cfg, rdb); err != nil {
		logger.Error.Fatalf("failed to register routes: %v", err)
	}

	logger.Info.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error.Fatalf("failed to start server: %v", err)
	}
}
