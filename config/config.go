package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"restaurant-ops-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs owner tokens; JWT_SECRET overrides the fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_owner_secret_2024"))

// Owner holds the single owner credential. The password is only kept as a
// bcrypt hash once Load has run.
var Owner struct {
	Username     string
	PasswordHash []byte
}

type Config struct {
	Port              string
	DBPath            string
	DBLogLevel        string
	CORSOrigin        string
	LowStockThreshold int
}

// Current is the configuration loaded at startup
var Current = &Config{
	Port:              "5001",
	DBPath:            "restaurant.db",
	DBLogLevel:        "warn",
	CORSOrigin:        "*",
	LowStockThreshold: 5,
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// Load reads .env (if present) and the environment into Current
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Could not read .env: %v", err)
	}

	JWTSecret = []byte(getEnv("JWT_SECRET", string(JWTSecret)))
	if err := SetOwner(getEnv("OWNER_USERNAME", "owner"), getEnv("OWNER_PASSWORD", "admin123")); err != nil {
		return nil, err
	}

	Current = &Config{
		Port:              getEnv("PORT", "5001"),
		DBPath:            getEnv("DB_PATH", "restaurant.db"),
		DBLogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 5),
	}
	return Current, nil
}

// SetOwner replaces the owner credential, hashing the password
func SetOwner(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash owner password: %w", err)
	}
	Owner.Username = username
	Owner.PasswordHash = hash
	return nil
}

func logLevel(name string) logger.LogLevel {
	switch strings.ToLower(name) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Open connects to the sqlite file at path and migrates every model
func Open(path, level string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(level)),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Auto-migrate all models
	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Reservation{},
		&models.PreparedEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func InitDB(cfg *Config) {
	var err error
	DB, err = Open(cfg.DBPath, cfg.DBLogLevel)
	if err != nil {
		log.Fatal("❌ Failed to initialize database: ", err)
	}
	log.Println("✅ Database connected and migrated successfully")
}
