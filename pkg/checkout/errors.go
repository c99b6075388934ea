package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCart blocks entering the Details stage with nothing to buy.
	ErrEmptyCart = errors.New("cart is empty, add some items before checking out")

	// ErrInvalidStage rejects an operation the current stage does not allow.
	ErrInvalidStage = errors.New("operation not allowed in current checkout stage")

	// ErrPaymentInFlight rejects a second gateway invocation while one is
	// outstanding.
	ErrPaymentInFlight = errors.New("a payment attempt is already in progress")

	// ErrNoPaymentInFlight rejects a completion or dismissal with no open
	// invocation to settle.
	ErrNoPaymentInFlight = errors.New("no payment attempt in progress")
)

// ValidationError reports missing or invalid customer details. Recovered
// locally; the transition to Payment is blocked until resolved.
type ValidationError struct {
	MissingFields []string
	InvalidPhone  bool
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
	}
	if e.InvalidPhone {
		return "enter a valid Kenyan phone number"
	}
	return "invalid customer details"
}

// PaymentFailure is a provider-reported non-successful payment. The user
// can retry from the Payment stage.
type PaymentFailure struct {
	Status string
	TxRef  string
}

func (e *PaymentFailure) Error() string {
	return fmt.Sprintf("payment failed (provider status %q), try again or use a different method", e.Status)
}

// VerificationFailure means the backend could not confirm the charge: the
// verify call errored, timed out, or returned an unverified status. Funds
// may have moved without confirmation, so this is surfaced distinctly with
// a contact-support notice, never as a plain payment failure.
type VerificationFailure struct {
	TransactionID string
	Cause         error
}

func (e *VerificationFailure) Error() string {
	return fmt.Sprintf("could not verify payment %s, contact support if funds were deducted", e.TransactionID)
}

func (e *VerificationFailure) Unwrap() error {
	return e.Cause
}
