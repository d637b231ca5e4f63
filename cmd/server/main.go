package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/julioszeferino/api-faculdade/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/julioszeferino/api-faculdade/internal/auth"
	"github.com/julioszeferino/api-faculdade/internal/cache"
	"github.com/julioszeferino/api-faculdade/internal/config"
	"github.com/julioszeferino/api-faculdade/internal/db"
	"github.com/julioszeferino/api-faculdade/internal/handler"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/repository"
	"github.com/julioszeferino/api-faculdade/internal/router"
	"github.com/julioszeferino/api-faculdade/internal/service"
)

// @title API Faculdade
// @version 1.0
// @description Users and articles CRUD with JWT session authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Article{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Article{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)

	hasher := auth.NewPasswordHasher()
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokenService)
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	articleService := service.NewArticleService(articleRepo, cacheClient)

	userHandler := handler.NewUserHandler(userService, authService)
	articleHandler := handler.NewArticleHandler(articleService)

	router.Register(e, tokenService, userRepo, userHandler, articleHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
