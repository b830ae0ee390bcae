// Command seed populates the database with demo users and posts for local
// development. Media URLs point at the provider's sample account so the feed
// renders without real uploads.
package main

import (
	"context"
	"fmt"
	"log"

	"simplesocial/internal/config"
	"simplesocial/internal/database"
	"simplesocial/internal/models"
	"simplesocial/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedUsers        = 5
	seedPostsPerUser = 4
	seedPassword     = "password123"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	gofakeit.Seed(0)

	for i := 0; i < seedUsers; i++ {
		user := &models.User{
			Email:    gofakeit.Email(),
			Password: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}

		for j := 0; j < seedPostsPerUser; j++ {
			fileType := models.FileTypeImage
			ext := "jpg"
			if gofakeit.Bool() {
				fileType = models.FileTypeVideo
				ext = "mp4"
			}
			name := fmt.Sprintf("%s.%s", gofakeit.Word(), ext)
			post := &models.Post{
				Caption:  gofakeit.Sentence(6),
				URL:      fmt.Sprintf("https://ik.imagekit.io/demo/seed/%s", name),
				FileType: fileType,
				FileName: name,
				UserID:   user.ID,
			}
			if err := postRepo.Create(ctx, post); err != nil {
				log.Fatalf("Failed to create post: %v", err)
			}
		}

		log.Printf("Seeded user %s with %d posts", user.Email, seedPostsPerUser)
	}

	log.Printf("Done: %d users, %d posts", seedUsers, seedUsers*seedPostsPerUser)
}
