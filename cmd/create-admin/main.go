package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/civicgate/civic-portal/internal/config"
	"github.com/civicgate/civic-portal/internal/database"
	"github.com/civicgate/civic-portal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "admin email (login identity)")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Admin", "first name")
	surname := flag.String("surname", "Portal", "surname")
	cityID := flag.Uint("city", uint(models.DefaultCityID), "city id")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Email:         *email,
		Password:      string(hash),
		Name:          *name,
		Surname:       *surname,
		Role:          models.RoleAdmin,
		AddressStreet: "-",
		AddressHouse:  "-",
		Logo:          models.DefaultUserLogo,
		CityID:        *cityID,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("admin account created: id=%d email=%s role=%s\n", admin.ID, admin.Email, admin.Role)
}
