package main

import (
	"context"
	"log"
	"os"

	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/hasher"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

const (
	demoEmail    = "demo@notekeep.local"
	demoPassword = "demo-password"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: demoEmail})
	if err != nil {
		log.Fatalf("Error: lookup failed: %v", err)
	}
	if existing != nil {
		color.Yellow("Demo user already seeded, nothing to do.")
		return
	}

	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		log.Fatalf("Error: hashing failed: %v", err)
	}

	user := &entity.User{Email: demoEmail, PasswordHash: hash}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		log.Fatalf("Error: failed to create demo user: %v", err)
	}

	notes := []*entity.Note{
		{Title: "Welcome", Content: "This is your first note.", UserId: user.Id},
		{Title: "Shopping list", Content: "Milk, eggs, coffee.", UserId: user.Id},
	}
	for _, n := range notes {
		if err := uow.NoteRepository().Create(ctx, n); err != nil {
			log.Fatalf("Error: failed to create demo note: %v", err)
		}
	}

	color.Green("Success: seeded %s with %d notes.", demoEmail, len(notes))
}
