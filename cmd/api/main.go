package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelops/internal/database"
	"hotelops/internal/middleware"
	"hotelops/internal/modules/booking"
	"hotelops/internal/modules/directory"
	"hotelops/internal/modules/inventory"
	"hotelops/internal/modules/order"
	"hotelops/internal/modules/payment"
	"hotelops/internal/modules/review"
	"hotelops/internal/modules/staff"
	"hotelops/internal/modules/stay"
	"hotelops/internal/repository"
)

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

	txManager := repository.NewTxManager(db)

	clientRepo := repository.NewClientRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	accommodationRepo := repository.NewAccommodationRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	directoryService := directory.NewService(clientRepo, addressRepo, buildingRepo, roomTypeRepo, roomRepo, productRepo, serviceRepo)
	bookingService := booking.NewService(bookingRepo, roomRepo, txManager)
	paymentService := payment.NewService(paymentRepo, bookingRepo, bookingRepo, txManager)
	stayService := stay.NewService(accommodationRepo, bookingRepo, roomRepo, txManager)
	orderService := order.NewService(orderRepo, accommodationRepo, productRepo, serviceRepo, inventoryRepo, txManager)
	inventoryService := inventory.NewService(inventoryRepo, buildingRepo, productRepo, serviceRepo)
	staffService := staff.NewService(employeeRepo, positionRepo, buildingRepo)
	reviewService := review.NewService(reviewRepo, clientRepo)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api/v1")
	directory.NewHandler(directoryService).RegisterRoutes(api)
	booking.NewHandler(bookingService).RegisterRoutes(api)
	payment.NewHandler(paymentService).RegisterRoutes(api)
	stay.NewHandler(stayService).RegisterRoutes(api)
	order.NewHandler(orderService).RegisterRoutes(api)
	inventory.NewHandler(inventoryService).RegisterRoutes(api)
	staff.NewHandler(staffService).RegisterRoutes(api)
	review.NewHandler(reviewService).RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
