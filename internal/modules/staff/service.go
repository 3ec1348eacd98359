package staff

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"hotelops/internal/domain"
)

type Service struct {
	employees employeeRepo
	positions positionRepo
	buildings buildingReader
}

func NewService(employees employeeRepo, positions positionRepo, buildings buildingReader) *Service {
	return &Service{
		employees: employees,
		positions: positions,
		buildings: buildings,
	}
}

func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	if _, err := s.buildings.GetByID(ctx, req.BuildingID); err != nil {
		return nil, err
	}
	e := &domain.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Phone:      req.Phone,
		BuildingID: req.BuildingID,
	}
	if len(req.PositionIDs) > 0 {
		positions, err := s.positions.GetByIDs(ctx, req.PositionIDs)
		if err != nil {
			return nil, err
		}
		e.Positions = positions
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *Service) SetEmployeePositions(ctx context.Context, id int64, positionIDs []int64) (*domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	positions, err := s.positions.GetByIDs(ctx, positionIDs)
	if err != nil {
		return nil, err
	}
	if err := s.employees.SetPositions(ctx, e, positions); err != nil {
		return nil, err
	}
	return s.employees.GetByID(ctx, id)
}

func (s *Service) CreatePosition(ctx context.Context, req CreatePositionRequest) (*domain.Position, error) {
	p := &domain.Position{Name: req.Name}
	if err := s.positions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPositions(ctx context.Context) ([]domain.Position, error) {
	return s.positions.List(ctx)
}

// ExportRoster streams the full employee roster as CSV. One row per
// employee, positions joined with "; " in a single column.
func (s *Service) ExportRoster(ctx context.Context, w io.Writer) error {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "phone", "building", "positions"}); err != nil {
		return err
	}
	for i := range employees {
		e := &employees[i]
		building := ""
		if e.Building != nil {
			building = e.Building.Name
		}
		names := make([]string, 0, len(e.Positions))
		for _, p := range e.Positions {
			names = append(names, p.Name)
		}
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.FullName(),
			e.Phone,
			building,
			strings.Join(names, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
