package services

import (
	"testing"

	"jatomogu/constants"
)

func TestPaymentTransitionAllowed(t *testing.T) {
	allowed := []struct{ from, to constants.PaymentStatus }{
		{constants.PaymentPending, constants.PaymentCompleted},
		{constants.PaymentPending, constants.PaymentFailed},
		{constants.PaymentCompleted, constants.PaymentRefunded},
		{constants.PaymentFailed, constants.PaymentPending},
	}
	for _, tc := range allowed {
		if !paymentTransitionAllowed(tc.from, tc.to) {
			t.Fatalf("%q -> %q should be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to constants.PaymentStatus }{
		{constants.PaymentPending, constants.PaymentRefunded},
		{constants.PaymentFailed, constants.PaymentCompleted},
		{constants.PaymentRefunded, constants.PaymentPending},
		{constants.PaymentRefunded, constants.PaymentCompleted},
		{constants.PaymentCompleted, constants.PaymentPending},
	}
	for _, tc := range forbidden {
		if paymentTransitionAllowed(tc.from, tc.to) {
			t.Fatalf("%q -> %q should be forbidden", tc.from, tc.to)
		}
	}
}
