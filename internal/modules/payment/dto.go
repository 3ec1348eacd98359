package payment

import "github.com/shopspring/decimal"

type RecordPaymentRequest struct {
	BookingID   int64           `json:"booking_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"required"`
	Status      string          `json:"status"`
	PaymentDate string          `json:"payment_date"`
}
