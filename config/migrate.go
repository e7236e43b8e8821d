package config

import (
	"log"

	"institut_backend/models"

	"gorm.io/gorm"
)

func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.ContactSubmission{},
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.News{},
		&models.Gallery{},
		&models.Setting{},
	}
}

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(allModels()...)
	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database Migrations completed succesfully...")
	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	// Drop all tables
	if err := db.Migrator().DropTable(allModels()...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
		return err
	}

	log.Println("All tables dropped successfully.")

	if err := db.AutoMigrate(allModels()...); err != nil {
		log.Printf("Failed to auto migrate: %v", err)
		return err
	}

	log.Println("Database reset and migration completed successfully.")
	return nil
}
