package config

import (
	"log"
	"os"

	"github.com/visourastudio-blip/pizza-do-ze/cart"
	"github.com/visourastudio-blip/pizza-do-ze/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const defaultJWTSecret = "pizza_do_ze_super_secret_2024"

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", defaultJWTSecret))

// LoadEnv reads a .env file if one exists. Missing files are fine; real
// env vars always win. The JWT secret is re-resolved afterwards so a
// .env-provided value takes effect.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", defaultJWTSecret))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnv exposes the env-with-fallback helper to other packages.
func GetEnv(key, fallback string) string {
	return getEnv(key, fallback)
}

func InitDB() {
	var err error
	dsn := getEnv("PIZZERIA_DB", "pizzeria.db")
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderStatusHistory{},
		&models.Review{},
		&cart.SnapshotRecord{},
	)
}
