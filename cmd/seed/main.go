package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelops/internal/database"
	"hotelops/internal/domain"
)

// Seeds a demo data set for local development: one building with a handful
// of rooms, a few clients, the minibar catalog and opening stock levels.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelops.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("Seed completed")
}

func seed(db *gorm.DB) error {
	address := domain.Address{ID: 1, City: "Almaty", Street: "Abay Avenue", HouseNumber: "12"}
	if err := upsert(db, &address); err != nil {
		return err
	}

	building := domain.Building{ID: 1, Name: "Main Building", AddressID: address.ID, Description: "Four-floor main block", Capacity: 80}
	if err := upsert(db, &building); err != nil {
		return err
	}

	roomTypes := []domain.RoomType{
		{ID: 1, Name: "Standard", PricePerNight: decimal.RequireFromString("2000.00")},
		{ID: 2, Name: "Comfort", PricePerNight: decimal.RequireFromString("3000.00")},
		{ID: 3, Name: "Suite", PricePerNight: decimal.RequireFromString("6500.00")},
	}
	for i := range roomTypes {
		if err := upsert(db, &roomTypes[i]); err != nil {
			return err
		}
	}

	rooms := []domain.Room{
		{ID: 1, BuildingID: building.ID, RoomTypeID: 1, RoomNumber: "101", Status: domain.RoomFree},
		{ID: 2, BuildingID: building.ID, RoomTypeID: 1, RoomNumber: "102", Status: domain.RoomFree},
		{ID: 3, BuildingID: building.ID, RoomTypeID: 2, RoomNumber: "201", Status: domain.RoomFree},
		{ID: 4, BuildingID: building.ID, RoomTypeID: 3, RoomNumber: "301", Status: domain.RoomMaintenance},
	}
	for i := range rooms {
		if err := upsert(db, &rooms[i]); err != nil {
			return err
		}
	}

	clients := []domain.Client{
		{
			ID: 1, FirstName: "Aigerim", LastName: "Nurlanova",
			Phone: "+7-700-100-20-30", Email: "aigerim@example.com",
			PassportData: "N12345678", RegistrationDate: domain.Today(),
		},
		{
			ID: 2, FirstName: "Daniyar", LastName: "Seitkali",
			Phone: "+7-700-100-20-31", Email: "daniyar@example.com",
			PassportData: "N87654321", RegistrationDate: domain.Today(),
		},
	}
	for i := range clients {
		if err := upsert(db, &clients[i]); err != nil {
			return err
		}
	}

	products := []domain.Product{
		{ID: 1, Name: "Mineral water", Price: decimal.RequireFromString("150.00")},
		{ID: 2, Name: "Chocolate bar", Price: decimal.RequireFromString("350.00")},
		{ID: 3, Name: "Toothbrush kit", Price: decimal.RequireFromString("500.00")},
	}
	for i := range products {
		if err := upsert(db, &products[i]); err != nil {
			return err
		}
	}

	services := []domain.Service{
		{ID: 1, Name: "Laundry", Price: decimal.RequireFromString("800.00")},
		{ID: 2, Name: "Airport transfer", Price: decimal.RequireFromString("5000.00")},
		{ID: 3, Name: "Breakfast delivery", Price: decimal.RequireFromString("1200.00")},
	}
	for i := range services {
		if err := upsert(db, &services[i]); err != nil {
			return err
		}
	}

	positions := []domain.Position{
		{ID: 1, Name: "Administrator"},
		{ID: 2, Name: "Housekeeper"},
		{ID: 3, Name: "Receptionist"},
	}
	for i := range positions {
		if err := upsert(db, &positions[i]); err != nil {
			return err
		}
	}

	employees := []domain.Employee{
		{
			ID: 1, FirstName: "Anna", LastName: "Petrova",
			Phone: "+7-700-000-00-01", BuildingID: building.ID,
		},
		{
			ID: 2, FirstName: "Ivan", LastName: "Sidorov", MiddleName: "Petrovich",
			Phone: "+7-700-000-00-02", BuildingID: building.ID,
		},
	}
	for i := range employees {
		if err := upsert(db, &employees[i]); err != nil {
			return err
		}
	}
	if err := db.Model(&employees[0]).Association("Positions").Replace([]domain.Position{positions[0], positions[2]}); err != nil {
		return err
	}
	if err := db.Model(&employees[1]).Association("Positions").Replace([]domain.Position{positions[1]}); err != nil {
		return err
	}

	// Opening stock: every product is on the shelf in the main building.
	for _, p := range products {
		row := domain.BuildingProduct{BuildingID: building.ID, ProductID: p.ID, Available: 20}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "building_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"available"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	for _, s := range services {
		row := domain.BuildingService{BuildingID: building.ID, ServiceID: s.ID, IsActive: true}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "building_id"}, {Name: "service_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_active"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// upsert inserts the row or updates all columns when the primary key
// already exists, so reseeding is repeatable.
func upsert(db *gorm.DB, model any) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error
}
