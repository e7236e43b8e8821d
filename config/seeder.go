package config

import (
	"log"

	"institut_backend/models"
	"institut_backend/storage"
	"institut_backend/utils"
)

// SeedAdminUser creates the backoffice admin account if it does not exist
// yet. The password is hashed before storage; an empty password skips
// seeding entirely so no account with a guessable default is created.
func SeedAdminUser(store storage.Storage, username, password string) error {
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user seeding")
		return nil
	}

	existing, err := store.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Admin user already exists: %s", username)
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{Username: username, Password: hash}
	if err := store.CreateUser(user); err != nil {
		log.Printf("Failed to seed admin user %s: %v", username, err)
		return err
	}

	log.Printf("Admin user seeded: %s", username)
	return nil
}

// SeedSettings ensures the site feature flags exist with their defaults.
func SeedSettings(store storage.Storage) error {
	defaults := map[string]string{
		"snow_effect": "false",
	}

	for key, value := range defaults {
		existing, err := store.GetSetting(key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := store.SetSetting(key, value); err != nil {
			log.Printf("Failed to seed setting %s: %v", key, err)
			return err
		}
		log.Printf("Setting seeded: %s=%s", key, value)
	}

	return nil
}
