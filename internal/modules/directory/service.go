package directory

import (
	"context"
	"fmt"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/validator"
)

// Service covers the reference data the rest of the system leans on:
// clients, addresses, buildings, room types, rooms and the product and
// service catalogs.
type Service struct {
	clients   clientRepo
	addresses addressRepo
	buildings buildingRepo
	roomTypes roomTypeRepo
	rooms     roomRepo
	products  productRepo
	services  serviceRepo
}

func NewService(clients clientRepo, addresses addressRepo, buildings buildingRepo, roomTypes roomTypeRepo, rooms roomRepo, products productRepo, services serviceRepo) *Service {
	return &Service{
		clients:   clients,
		addresses: addresses,
		buildings: buildings,
		roomTypes: roomTypes,
		rooms:     rooms,
		products:  products,
		services:  services,
	}
}

func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	c := &domain.Client{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MiddleName:       req.MiddleName,
		Phone:            req.Phone,
		Email:            req.Email,
		PassportData:     req.PassportData,
		RegistrationDate: domain.Today(),
	}
	if fields := validator.Validate(c); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, fields)
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.FirstName = req.FirstName
	c.LastName = req.LastName
	c.MiddleName = req.MiddleName
	c.Phone = req.Phone
	c.Email = req.Email
	c.PassportData = req.PassportData
	if fields := validator.Validate(c); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, fields)
	}
	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return err
	}
	return s.clients.Delete(ctx, id)
}

func (s *Service) CreateAddress(ctx context.Context, req CreateAddressRequest) (*domain.Address, error) {
	a := &domain.Address{
		City:        req.City,
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
	}
	if err := s.addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	return s.addresses.List(ctx)
}

func (s *Service) CreateBuilding(ctx context.Context, req CreateBuildingRequest) (*domain.Building, error) {
	b := &domain.Building{
		Name:        req.Name,
		AddressID:   req.AddressID,
		Description: req.Description,
		Capacity:    req.Capacity,
	}
	if err := s.buildings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBuilding(ctx context.Context, id int64) (*domain.Building, error) {
	return s.buildings.GetByID(ctx, id)
}

func (s *Service) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	return s.buildings.List(ctx)
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	if req.PricePerNight.IsNegative() {
		return nil, fmt.Errorf("%w: price per night must not be negative", ErrValidation)
	}
	rt := &domain.RoomType{
		Name:          req.Name,
		PricePerNight: req.PricePerNight,
	}
	if err := s.roomTypes.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypes.List(ctx)
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.buildings.GetByID(ctx, req.BuildingID); err != nil {
		return nil, err
	}
	if _, err := s.roomTypes.GetByID(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}
	room := &domain.Room{
		BuildingID: req.BuildingID,
		RoomTypeID: req.RoomTypeID,
		RoomNumber: req.RoomNumber,
		Status:     domain.RoomFree,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.roomTypes.GetByID(ctx, req.RoomTypeID); err != nil {
		return nil, err
	}
	room.RoomTypeID = req.RoomTypeID
	room.RoomNumber = req.RoomNumber
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) ListRoomsByBuilding(ctx context.Context, buildingID int64) ([]domain.Room, error) {
	return s.rooms.ListByBuilding(ctx, buildingID)
}

func (s *Service) UpdateRoomStatus(ctx context.Context, id int64, status string) (*domain.Room, error) {
	parsed, err := domain.ParseRoomStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.rooms.UpdateStatus(ctx, id, parsed); err != nil {
		return nil, err
	}
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.rooms.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	p := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}
