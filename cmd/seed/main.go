package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"stockroom/internal/config"
	"stockroom/internal/domain"
	"stockroom/internal/repository"
	"stockroom/internal/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Starting seed process...")

	if err := truncateTables(db.DB()); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	if err := seedDemoInventory(db.DB()); err != nil {
		log.Fatalf("Failed to seed demo inventory: %v", err)
	}

	log.Println("Seed process completed!")
}

func truncateTables(db *sqlx.DB) error {
	log.Println("Truncating all seed tables...")

	tables := []string{
		"items",
		"users",
	}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
		log.Printf("Truncated table: %s", table)
	}

	return nil
}

func seedDemoInventory(db *sqlx.DB) error {
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)

	hashed, err := util.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username: "storekeeper",
		Email:    "storekeeper@example.com",
		Password: hashed,
	}
	if err := userRepo.Create(user); err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}
	log.Printf("Created demo user: %s", user.Username)

	desc := func(s string) *string { return &s }
	items := []*domain.Item{
		{OwnerID: user.ID, Name: "USB-C Cable", Quantity: 120, Description: desc("2m braided charging cable")},
		{OwnerID: user.ID, Name: "Mechanical Keyboard", Quantity: 14, Description: desc("Tenkeyless, brown switches")},
		{OwnerID: user.ID, Name: "Laptop Stand", Quantity: 7, Description: desc("Aluminium, foldable")},
		{OwnerID: user.ID, Name: "Webcam", Quantity: 3, Description: nil},
		{OwnerID: user.ID, Name: "HDMI Adapter", Quantity: 0, Description: desc("USB-C to HDMI 4K")},
	}

	for _, item := range items {
		if err := itemRepo.Insert(item); err != nil {
			return fmt.Errorf("insert item %q: %w", item.Name, err)
		}
		log.Printf("Created item: %s (qty %d)", item.Name, item.Quantity)
	}

	return nil
}
