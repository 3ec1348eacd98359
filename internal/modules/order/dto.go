package order

type OrderProductRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

type OrderServiceRequest struct {
	ServiceID int64 `json:"service_id" binding:"required"`
}
