package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"room-reservation-backend/models"
	"room-reservation-backend/services"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "room_reservation_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection and migrates the schema in
// parent-before-child order.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Reservation{},
		&models.Image{},
	); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// SeedDatabase ensures a login user and a few rooms exist so a fresh
// deployment is usable.
func SeedDatabase(db *gorm.DB) {
	seedRooms(db)

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return
	}

	salt, err := services.GenerateSalt()
	if err != nil {
		log.Printf("warning: failed to generate salt for default user: %v", err)
		return
	}
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		log.Printf("warning: failed to decode generated salt: %v", err)
		return
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     envOrDefault("SEED_USERNAME", "admin"),
		PasswordHash: services.HashPassword(envOrDefault("SEED_PASSWORD", "admin123"), saltBytes),
		PasswordSalt: salt,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("warning: failed to create default user: %v", err)
		return
	}
	log.Println("Default user seeded")
}

func seedRooms(db *gorm.DB) {
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		return
	}

	rooms := []models.Room{
		{
			ID:               uuid.New(),
			Name:             "Standard Double Room",
			Price:            79,
			DescriptionShort: "Double bed, garden view",
			DescriptionLong:  "A cosy double room on the ground floor with a view of the garden, private bathroom and free Wi-Fi.",
		},
		{
			ID:               uuid.New(),
			Name:             "Superior Twin Room",
			Price:            95,
			DescriptionShort: "Two single beds, street view",
			DescriptionLong:  "A bright twin room on the second floor with a work desk, private bathroom and free Wi-Fi.",
		},
		{
			ID:               uuid.New(),
			Name:             "Junior Suite",
			Price:            149,
			DescriptionShort: "King bed with a separate sitting area",
			DescriptionLong:  "A spacious suite with a king-size bed, sitting area, bathtub and a balcony overlooking the courtyard.",
		},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Sample rooms seeded")
}
