package booking

type CreateBookingRequest struct {
	ClientID     int64  `json:"client_id" binding:"required"`
	RoomID       int64  `json:"room_id" binding:"required"`
	CheckinDate  string `json:"checkin_date" binding:"required"`
	CheckoutDate string `json:"checkout_date" binding:"required"`
}

type UpdateBookingRequest struct {
	CheckinDate  string `json:"checkin_date" binding:"required"`
	CheckoutDate string `json:"checkout_date" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityResponse struct {
	RoomID       int64  `json:"room_id"`
	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`
	Available    bool   `json:"available"`
}
