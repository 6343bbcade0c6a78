package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		status     PaymentStatus
		total      string
		paid       *string
		wantPaid   string
		wantDueAmt string
	}{
		{"session paid", PaymentSessionPaid, "100", strPtr("10"), "100", "0"},
		{"reservation paid partial", PaymentReservationPaid, "100", strPtr("25"), "25", "75"},
		{"reservation paid over total is clamped", PaymentReservationPaid, "100", strPtr("150"), "150", "0"},
		{"reservation paid without amount", PaymentReservationPaid, "100", nil, "0", "100"},
		{"reservation paid invalid amount", PaymentReservationPaid, "100", strPtr("abc"), "0", "100"},
		{"reservation paid negative amount", PaymentReservationPaid, "100", strPtr("-5"), "0", "100"},
		{"reservation pending", PaymentReservationPending, "80", strPtr("30"), "0", "80"},
		{"reservation failed", PaymentReservationFailed, "80", nil, "0", "80"},
		{"unpaid", PaymentUnpaid, "80", strPtr("anything"), "0", "80"},
		{"absent status", "", "80", strPtr("20"), "0", "80"},
		{"reservation refunded", PaymentReservationRefunded, "80", strPtr("20"), "0", "0"},
		{"session refunded", PaymentSessionRefunded, "80", nil, "0", "0"},
		{"unknown status uses unpaid rule", PaymentStatus("comped"), "80", strPtr("80"), "0", "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.status, decimal.RequireFromString(tt.total), tt.paid)
			assert.Equal(t, tt.wantPaid, got.PaidAmount.String())
			assert.Equal(t, tt.wantDueAmt, got.BalanceDue.String())
		})
	}
}

func TestReconcile_BalanceNeverNegative(t *testing.T) {
	totals := []string{"0", "0.01", "45", "100"}
	paid := []*string{nil, strPtr("0"), strPtr("1000"), strPtr("-3"), strPtr("x"), strPtr("99.99")}

	for _, status := range append(PaymentStatuses(), "", "bogus") {
		for _, total := range totals {
			for _, p := range paid {
				got := Reconcile(status, decimal.RequireFromString(total), p)
				assert.False(t, got.BalanceDue.IsNegative(), "status=%q total=%s", status, total)
			}
		}
	}
}

func TestReconcile_SessionPaidSettlesFullPrice(t *testing.T) {
	for _, total := range []string{"0", "12.5", "300"} {
		got := Reconcile(PaymentSessionPaid, decimal.RequireFromString(total), strPtr("1"))
		assert.True(t, got.PaidAmount.Equal(decimal.RequireFromString(total)))
		assert.True(t, got.BalanceDue.IsZero())
	}
}

func TestNextPaymentStatus(t *testing.T) {
	tests := map[PaymentStatus]PaymentStatus{
		PaymentReservationFailed:   PaymentReservationPaid,
		PaymentReservationPending:  PaymentReservationPaid,
		PaymentReservationPaid:     PaymentSessionPaid,
		PaymentUnpaid:              PaymentSessionPaid,
		"":                         PaymentSessionPaid,
		PaymentSessionPaid:         PaymentSessionPaid,
		PaymentReservationRefunded: PaymentSessionPaid,
	}

	for current, want := range tests {
		assert.Equal(t, want, NextPaymentStatus(current), "current=%q", current)
	}
}

func TestAssess(t *testing.T) {
	catalog := testCatalog()

	figures := Assess(PriceInput{LessonTypeID: intPtr(5)}, PaymentReservationPaid, strPtr("20"), catalog)

	assert.Equal(t, "45", figures.TotalPrice.String())
	assert.Equal(t, "20", figures.PaidAmount.String())
	assert.Equal(t, "25", figures.BalanceDue.String())
	assert.Equal(t, PaymentSessionPaid, figures.NextPaymentStatus)
}

func TestPaymentStatus_IsValid(t *testing.T) {
	for _, s := range PaymentStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, PaymentStatus("").IsValid())
	assert.False(t, PaymentStatus("paid").IsValid())
	assert.Equal(t, PaymentUnpaid, PaymentStatus("").OrUnpaid())
}
