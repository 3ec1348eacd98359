package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotelops/internal/domain"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Address{},
		&domain.Building{},
		&domain.RoomType{},
		&domain.Room{},
		&domain.Client{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Accommodation{},
		&domain.Product{},
		&domain.Service{},
		&domain.ProductOrder{},
		&domain.ServiceOrder{},
		&domain.BuildingProduct{},
		&domain.BuildingService{},
		&domain.Position{},
		&domain.Employee{},
		&domain.Review{},
	)
}
