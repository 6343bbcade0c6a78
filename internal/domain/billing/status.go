package billing

// PaymentStatus is the payment state of a booking. An empty value means the booking
// never had one and is treated as unpaid.
type PaymentStatus string

const (
	PaymentUnpaid              PaymentStatus = "unpaid"
	PaymentReservationPending  PaymentStatus = "reservation-pending"
	PaymentReservationFailed   PaymentStatus = "reservation-failed"
	PaymentReservationPaid     PaymentStatus = "reservation-paid"
	PaymentSessionPaid         PaymentStatus = "session-paid"
	PaymentReservationRefunded PaymentStatus = "reservation-refunded"
	PaymentSessionRefunded     PaymentStatus = "session-refunded"
)

// PaymentStatuses lists every valid status in the order the console's selector shows them.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentUnpaid,
		PaymentReservationPending,
		PaymentReservationFailed,
		PaymentReservationPaid,
		PaymentSessionPaid,
		PaymentReservationRefunded,
		PaymentSessionRefunded,
	}
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid,
		PaymentReservationPending,
		PaymentReservationFailed,
		PaymentReservationPaid,
		PaymentSessionPaid,
		PaymentReservationRefunded,
		PaymentSessionRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) String() string {
	return string(s)
}

// OrUnpaid maps the absent status to unpaid and leaves everything else untouched.
func (s PaymentStatus) OrUnpaid() PaymentStatus {
	if s == "" {
		return PaymentUnpaid
	}
	return s
}

// IsRefunded reports whether the money for the booking was returned.
func (s PaymentStatus) IsRefunded() bool {
	return s == PaymentReservationRefunded || s == PaymentSessionRefunded
}

// NextPaymentStatus is the status the "mark paid" action submits. It only moves forward:
// a pending or failed reservation becomes paid, everything else becomes session-paid.
// Refunds and failures are set explicitly through the status selector instead.
func NextPaymentStatus(current PaymentStatus) PaymentStatus {
	switch current {
	case PaymentReservationFailed, PaymentReservationPending:
		return PaymentReservationPaid
	default:
		return PaymentSessionPaid
	}
}
