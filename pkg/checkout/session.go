package checkout

import (
	"sync"

	"maasaicraft.co.ke/shop/api/pkg/cart"
	"maasaicraft.co.ke/shop/api/pkg/models"
	"maasaicraft.co.ke/shop/api/pkg/payment"
	"maasaicraft.co.ke/shop/api/pkg/validation"
)

// Stage is the current point in the purchase flow.
type Stage string

const (
	StageCart    Stage = "cart"
	StageDetails Stage = "details"
	StagePayment Stage = "payment"
)

// Session drives one cart through the checkout stages. It owns the cart and
// the customer details being collected; all mutation goes through its
// methods. State transitions happen on discrete user actions and provider
// callbacks, so the lock is only there to keep HTTP handlers and the
// provider callback from interleaving.
type Session struct {
	ID string

	mu         sync.Mutex
	cart       *cart.Cart
	stage      Stage
	details    models.CustomerDetails
	inFlight   bool
	invocation *payment.Invocation
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		cart:  cart.New(),
		stage: StageCart,
	}
}

// Cart exposes the session's cart store. Cart edits are allowed at any
// stage, even while a payment is pending; the payment request snapshotted
// the cart at build time and is not re-derived.
func (s *Session) Cart() *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) Details() models.CustomerDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details
}

func (s *Session) PaymentInFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// BeginCheckout moves Cart -> Details. Guarded: an empty cart blocks the
// transition.
func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageCart {
		return ErrInvalidStage
	}
	if s.cart.IsEmpty() {
		return ErrEmptyCart
	}
	s.stage = StageDetails
	return nil
}

// SubmitDetails validates the customer details and moves Details -> Payment.
// On success the details are frozen for this attempt.
func (s *Session) SubmitDetails(details models.CustomerDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StageDetails {
		return ErrInvalidStage
	}
	if missing := details.MissingFields(); len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	if !validation.IsKenyanPhone(details.Phone) {
		return &ValidationError{InvalidPhone: true}
	}
	s.details = details
	s.stage = StagePayment
	return nil
}

// Back steps one stage towards the cart. Unconditional; details are
// retained, only the visible stage changes.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.stage {
	case StagePayment:
		s.stage = StageDetails
	case StageDetails:
		s.stage = StageCart
	}
}

// ClosePanel abandons the checkout: back to the Cart stage without clearing
// anything. An outstanding payment invocation is untouched; its callback or
// dismissal still clears the in-flight flag.
func (s *Session) ClosePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = StageCart
}

// beginPayment marks a gateway invocation outstanding. Fails when one
// already is, or when the session is not at the Payment stage.
func (s *Session) beginPayment(inv *payment.Invocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage != StagePayment {
		return ErrInvalidStage
	}
	if s.inFlight {
		return ErrPaymentInFlight
	}
	s.inFlight = true
	s.invocation = inv
	return nil
}

// currentInvocation returns the outstanding invocation, if any.
func (s *Session) currentInvocation() *payment.Invocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invocation
}

// settlePayment clears the in-flight flag. Called unconditionally once the
// completion callback fires or the widget is dismissed, regardless of
// outcome.
func (s *Session) settlePayment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.invocation = nil
}

// completeSuccess is the terminal success transition: cart cleared, details
// reset, back to the Cart stage. Triggered only by a verified-successful
// payment.
func (s *Session) completeSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.details = models.CustomerDetails{}
	s.stage = StageCart
}
