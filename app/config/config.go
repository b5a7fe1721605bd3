package config

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB           *sql.DB
	Port         string
	JWTSecret    string
	JWTExpiresIn time.Duration
	UploadDir    string
}

var AppConfig *Config

// Load reads .env (if present) plus environment variables, opens the
// database and verifies the connection. Call once at startup.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := getenv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=botkasse sslmode=disable")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	expiresIn := 7 * 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRES_IN %q, keeping default: %v", raw, err)
		} else {
			expiresIn = parsed
		}
	}

	AppConfig = &Config{
		DB:           db,
		Port:         getenv("PORT", "3000"),
		JWTSecret:    getenv("JWT_SECRET", "default-secret-change-me"),
		JWTExpiresIn: expiresIn,
		UploadDir:    getenv("UPLOAD_DIR", "./uploads"),
	}
	log.Println("Database connected successfully")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
