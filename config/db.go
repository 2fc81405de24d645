package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-ledger/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

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
	dbName := envOrDefault("DB_NAME", "hotel_ledger")

	// loc=UTC so date-only columns never drift across timezones
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase creates a first hotel and admin when the database is empty so
// a fresh install is immediately usable. Credentials come from SEED_* vars.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return
	}

	email := envOrDefault("SEED_ADMIN_EMAIL", "admin@hotel.local")
	password := envOrDefault("SEED_ADMIN_PASSWORD", "admin123")
	hotelName := envOrDefault("SEED_HOTEL_NAME", "Default Hotel")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash seed admin password: %v", err)
		return
	}

	hotel := models.Hotel{Name: hotelName, Timezone: "Asia/Tashkent", CreatedAt: time.Now().UTC()}
	if err := DB.Create(&hotel).Error; err != nil {
		log.Printf("warning: failed to seed hotel: %v", err)
		return
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		HotelID:      hotel.ID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to seed admin user: %v", err)
		return
	}
	if err := DB.Create(&models.UserRole{UserID: admin.ID, Role: models.RoleAdmin}).Error; err != nil {
		log.Printf("warning: failed to seed admin role: %v", err)
		return
	}

	log.Printf("Seeded hotel %q with admin %s", hotelName, email)
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
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
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Hotel{},
		&models.User{},
		&models.UserRole{},
		&models.Room{},
		&models.Stay{},
		&models.Payment{},
		&models.Expense{},
		&models.Transfer{},
		&models.MonthClosing{},
		&models.CustomPaymentMethod{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
