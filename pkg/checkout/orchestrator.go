package checkout

import (
	"context"
	"log"

	"maasaicraft.co.ke/shop/api/pkg/notify"
	"maasaicraft.co.ke/shop/api/pkg/payment"
)

// Orchestrator runs the payment path: build the provider request, open the
// widget, and settle the single terminal event (completion or dismissal)
// through verification and notification. Every failure is converted into a
// typed error for the handler layer; nothing in this path may leave the
// session's in-flight flag set.
type Orchestrator struct {
	publicKey string
	gateway   payment.Gateway
	verifier  payment.Verifier
	notifier  *notify.Dispatcher
}

func NewOrchestrator(publicKey string, gw payment.Gateway, verifier payment.Verifier, notifier *notify.Dispatcher) *Orchestrator {
	return &Orchestrator{
		publicKey: publicKey,
		gateway:   gw,
		verifier:  verifier,
		notifier:  notifier,
	}
}

// StartPayment builds the payment request from the session's cart snapshot
// and frozen details, then opens the gateway widget. The returned
// invocation's request is what the frontend feeds to the inline widget.
func (o *Orchestrator) StartPayment(s *Session, method payment.Method) (*payment.Invocation, error) {
	s.mu.Lock()
	if s.stage != StagePayment {
		s.mu.Unlock()
		return nil, ErrInvalidStage
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrPaymentInFlight
	}
	req := payment.BuildRequest(o.publicKey, s.cart.Lines(), s.cart.ComputeTotals(), s.details, method)
	s.mu.Unlock()

	inv, err := o.gateway.Open(req)
	if err != nil {
		return nil, err
	}
	if err := s.beginPayment(inv); err != nil {
		// lost the race to another invocation; close ours
		inv.Dismiss()
		return nil, err
	}
	return inv, nil
}

// CompletePayment settles the outstanding invocation with the provider's
// completion report. The widget is closed by the invocation before any
// further work. The in-flight flag clears unconditionally, whatever the
// outcome.
//
// A provider status other than "successful" is a PaymentFailure and never
// reaches the verifier. A successful status is only trusted after the
// verification backend confirms it; anything less is a VerificationFailure
// and the cart and stage stay exactly as they were.
func (o *Orchestrator) CompletePayment(ctx context.Context, s *Session, result payment.Result) error {
	inv := s.currentInvocation()
	if inv == nil {
		return ErrNoPaymentInFlight
	}
	if !inv.Complete(result) {
		return ErrNoPaymentInFlight
	}
	defer s.settlePayment()

	if result.Status != payment.StatusSuccessful {
		return &PaymentFailure{Status: result.Status, TxRef: result.TxRef}
	}

	if err := o.verifier.Verify(ctx, result.TransactionID); err != nil {
		log.Printf("verification failed for transaction %s: %v", result.TransactionID, err)
		return &VerificationFailure{TransactionID: result.TransactionID, Cause: err}
	}

	// Verified. Confirmation SMS is fire-and-forget; the checkout already
	// succeeded whether or not the message goes out.
	o.notifier.Dispatch(ctx, inv.Request.Customer.PhoneNumber, inv.Request.Amount, result.TxRef)

	s.completeSuccess()
	return nil
}

// DismissPayment settles the outstanding invocation as closed-without-
// paying. Cart, details and stage are untouched; only the in-flight flag
// clears.
func (o *Orchestrator) DismissPayment(s *Session) error {
	inv := s.currentInvocation()
	if inv == nil {
		return ErrNoPaymentInFlight
	}
	if !inv.Dismiss() {
		return ErrNoPaymentInFlight
	}
	s.settlePayment()
	return nil
}
