package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-cms/config"
	"blog-cms/handlers"
	"blog-cms/helper"
	"blog-cms/logger"
	"blog-cms/middleware"
	"blog-cms/repositories"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gin.SetMode(gin.ReleaseMode)

	// Initialize database
	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("init database", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)

	// Initialize services
	hasher := services.NewPasswordHasher(cfg.BcryptCost, cfg.HashConcurrency)
	tokens := services.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTExpiration)
	authService := services.NewAuthService(userRepo, hasher, tokens, zl)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(postRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper(zl)
	router := &handlers.Router{
		Auth:     handlers.NewAuthHandler(authService, httpHelper, cfg.JWTExpiration, cfg.CookieSecure),
		Users:    handlers.NewUserHandler(authService, httpHelper),
		Posts:    handlers.NewPostHandler(postService, httpHelper),
		Comments: handlers.NewCommentHandler(commentService, httpHelper),
		Mediator: middleware.NewMediator(tokens, authService, httpHelper, zl),
		Helper:   httpHelper,
		Log:      zl,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
