package billing

import "github.com/shopspring/decimal"

// Settlement is what has been paid toward a booking and what is still owed.
type Settlement struct {
	PaidAmount decimal.Decimal
	BalanceDue decimal.Decimal
}

// Reconcile derives the settlement from the payment status, the resolved price and the raw
// paid_amount field. Unknown statuses fall back to the unpaid rule. BalanceDue is never negative.
func Reconcile(status PaymentStatus, totalPrice decimal.Decimal, rawPaidAmount *string) Settlement {
	var s Settlement

	switch status {
	case PaymentSessionPaid:
		s = Settlement{PaidAmount: totalPrice, BalanceDue: decimal.Zero}
	case PaymentReservationPaid:
		paid := ParseDecimalOrZero(rawPaidAmount)
		if !paid.IsPositive() {
			paid = decimal.Zero
		}
		s = Settlement{PaidAmount: paid, BalanceDue: totalPrice.Sub(paid)}
	case PaymentReservationRefunded, PaymentSessionRefunded:
		s = Settlement{PaidAmount: decimal.Zero, BalanceDue: decimal.Zero}
	case PaymentReservationPending, PaymentReservationFailed, PaymentUnpaid, "":
		s = Settlement{PaidAmount: decimal.Zero, BalanceDue: totalPrice}
	default:
		s = Settlement{PaidAmount: decimal.Zero, BalanceDue: totalPrice}
	}

	if s.BalanceDue.IsNegative() {
		s.BalanceDue = decimal.Zero
	}
	return s
}

// Figures are the derived money values shown for one booking.
type Figures struct {
	TotalPrice        decimal.Decimal
	PaidAmount        decimal.Decimal
	BalanceDue        decimal.Decimal
	NextPaymentStatus PaymentStatus
}

// Assess runs the resolver and the reconciler for one booking.
func Assess(in PriceInput, status PaymentStatus, rawPaidAmount *string, catalog *Catalog) Figures {
	total := ResolvePrice(in, catalog)
	settlement := Reconcile(status, total, rawPaidAmount)
	return Figures{
		TotalPrice:        total,
		PaidAmount:        settlement.PaidAmount,
		BalanceDue:        settlement.BalanceDue,
		NextPaymentStatus: NextPaymentStatus(status),
	}
}
