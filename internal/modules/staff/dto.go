package staff

type CreateEmployeeRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	MiddleName  string  `json:"middle_name"`
	Phone       string  `json:"phone" binding:"required"`
	BuildingID  int64   `json:"building_id" binding:"required"`
	PositionIDs []int64 `json:"position_ids"`
}

type SetPositionsRequest struct {
	PositionIDs []int64 `json:"position_ids" binding:"required"`
}

type CreatePositionRequest struct {
	Name string `json:"name" binding:"required"`
}
