package review

type CreateReviewRequest struct {
	ClientID   int64  `json:"client_id" binding:"required"`
	BookingID  *int64 `json:"booking_id"`
	ReviewText string `json:"review_text" binding:"required"`
	Rating     int    `json:"rating" binding:"required,gte=1,lte=5"`
}
