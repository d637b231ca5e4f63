package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/julioszeferino/api-faculdade/internal/auth"
	"github.com/julioszeferino/api-faculdade/internal/config"
	"github.com/julioszeferino/api-faculdade/internal/db"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/repository"
)

const (
	adminEmail    = "admin@faculdade.com"
	adminPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Article{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	articles := repository.NewArticleRepository(gormDB)

	admin, err := users.FindByEmail(ctx, adminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin user: %v", err)
	}
	if admin != nil && err == nil {
		log.Printf("Admin user already exists (id=%d), nothing to do", admin.ID)
		return
	}

	digest, err := auth.NewPasswordHasher().Hash(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin = &model.User{
		Nome:      "Admin",
		Sobrenome: "Faculdade",
		Email:     adminEmail,
		Senha:     digest,
		EhAdmin:   true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user (id=%d)", admin.ID)

	samples := []model.Article{
		{
			Titulo:    "Bem-vindo",
			Descricao: "Primeiro artigo da API",
			URLFonte:  "https://go.dev/blog",
			UsuarioID: &admin.ID,
		},
		{
			Titulo:    "Como usar a API",
			Descricao: "Autentique-se em /usuarios/login e use o token Bearer",
			URLFonte:  "https://jwt.io/introduction",
			UsuarioID: &admin.ID,
		},
	}
	for i := range samples {
		if err := articles.Create(ctx, &samples[i]); err != nil {
			log.Fatalf("Failed to create sample article: %v", err)
		}
	}
	log.Printf("Seeded %d sample articles", len(samples))
}
