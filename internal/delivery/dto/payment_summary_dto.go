package dto

import "github.com/shopspring/decimal"

// PaymentSummaryResponse aggregates derived booking figures for the payments tab
type PaymentSummaryResponse struct {
	View              string          `json:"view"`
	BookingCount      int             `json:"booking_count"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	BalanceDue        decimal.Decimal `json:"balance_due"`
	TotalPriceDisplay string          `json:"total_price_display"`
	PaidAmountDisplay string          `json:"paid_amount_display"`
	BalanceDueDisplay string          `json:"balance_due_display"`
	ByPaymentStatus   map[string]int  `json:"by_payment_status"`
}
