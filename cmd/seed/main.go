package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"skiresort/internal/config"
	"skiresort/internal/database"
	"skiresort/internal/domain"
	"skiresort/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	log.Println("Running migrations...")
	migrations := []func() error{
		userRepo.Migrate,
		equipmentRepo.Migrate,
		bookingRepo.Migrate,
		instructorRepo.Migrate,
		lessonRepo.Migrate,
		transactionRepo.Migrate,
	}
	for _, migrate := range migrations {
		if err := migrate(); err != nil {
			log.Fatal("migration failed:", err)
		}
	}

	// Cleanup old data. Dependent tables first.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM trans")
	db.Exec("DELETE FROM lessons")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment_rent")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM instructors")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	log.Println("Creating users...")
	users := []struct {
		username string
		password string
		role     domain.UserRole
	}{
		{"admin", "admin", domain.RoleAdmin},
		{"user", "user", domain.RoleUser},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hash password:", err)
		}
		if err := userRepo.Create(ctx, &domain.User{
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
		}); err != nil {
			log.Fatal("create user:", err)
		}
		log.Printf("User created: %s / %s (%s)", u.username, u.password, u.role)
	}

	log.Println("Creating equipment...")
	equipment := []domain.Equipment{
		{Type: "ski", Size: "42", Total: 5, Available: 5},
		{Type: "ski", Size: "43", Total: 5, Available: 5},
		{Type: "snowboard", Size: "M", Total: 3, Available: 3},
	}
	for i := range equipment {
		if err := equipmentRepo.Create(ctx, &equipment[i]); err != nil {
			log.Fatal("create equipment:", err)
		}
	}

	log.Println("Creating instructors...")
	for _, name := range []string{"Ivan", "Olena"} {
		if err := instructorRepo.Create(ctx, &domain.Instructor{Name: name}); err != nil {
			log.Fatal("create instructor:", err)
		}
	}

	log.Println("Seed completed")
	log.Println("Test accounts: admin/admin (ADMIN), user/user (USER)")
}
