package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-backend/config"
	"restaurant-backend/controllers"
	"restaurant-backend/database"
	"restaurant-backend/logger"
	"restaurant-backend/repository"
	"restaurant-backend/routes"
	"restaurant-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		logger.Log.Fatal("DB connection failed", zap.Error(err))
	}
	store := database.NewStore(db, logger.Log)

	ctx := context.Background()
	api := repository.NewMockAPI(ctx, store, cfg.LatencyScale, logger.Log)

	authService := services.NewAuthService(api, store, logger.Log)
	authService.Load(ctx)

	dataService := services.NewDataService(api, authService, logger.Log)
	dataService.LoadAll(ctx)

	cartService := services.NewCartService()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(
		r,
		authService,
		controllers.NewAuthController(authService),
		controllers.NewMenuController(dataService),
		controllers.NewCartController(cartService, dataService),
		controllers.NewOrderController(dataService, cartService, authService),
		controllers.NewAdminController(dataService),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Log.Info("Restaurant backend started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server shutdown error", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		logger.Log.Error("Database close error", zap.Error(err))
	}
}
