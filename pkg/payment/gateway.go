package payment

import (
	"context"
	"log"
	"sync"
)

// Provider payment statuses as reported by the completion callback.
const (
	StatusSuccessful = "successful"
	StatusFailed     = "failed"
)

// Result is the provider's completion report for one payment attempt.
type Result struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	TxRef         string `json:"tx_ref"`
}

// Widget is an open provider payment surface that can be closed
// programmatically.
type Widget interface {
	Close()
}

// Outcome is exactly one terminal event of an invocation: either a
// completion result or a dismissal by the user.
type Outcome struct {
	Result    *Result
	Dismissed bool
}

// Invocation is one opened payment widget. Exactly one of Complete or
// Dismiss takes effect per invocation; later calls are ignored.
type Invocation struct {
	Request Request

	widget Widget
	once   sync.Once
	done   chan Outcome
}

func newInvocation(req Request, w Widget) *Invocation {
	return &Invocation{
		Request: req,
		widget:  w,
		done:    make(chan Outcome, 1),
	}
}

// NewInvocation wraps an externally managed widget. For Gateway
// implementations living outside this package.
func NewInvocation(req Request, w Widget) *Invocation {
	return newInvocation(req, w)
}

// Complete records the provider's completion callback. The widget is closed
// immediately, before any further work happens, so the UI is never left
// blocking. Returns false if the invocation already settled.
func (inv *Invocation) Complete(res Result) bool {
	settled := false
	inv.once.Do(func() {
		inv.widget.Close()
		inv.done <- Outcome{Result: &res}
		settled = true
	})
	return settled
}

// Dismiss records the user closing the widget without completing payment.
// Returns false if the invocation already settled.
func (inv *Invocation) Dismiss() bool {
	settled := false
	inv.once.Do(func() {
		inv.widget.Close()
		inv.done <- Outcome{Dismissed: true}
		settled = true
	})
	return settled
}

// Await blocks until the invocation's single terminal event arrives or the
// context expires.
func (inv *Invocation) Await(ctx context.Context) (Outcome, error) {
	select {
	case outcome := <-inv.done:
		return outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Gateway opens the provider widget for a built request.
type Gateway interface {
	Open(req Request) (*Invocation, error)
}

// FlutterwaveGateway adapts the Flutterwave inline widget. The widget
// itself renders in the customer's browser from the request config; the
// server tracks the open invocation and settles it from the provider's
// completion callback or the customer's dismissal.
type FlutterwaveGateway struct{}

func NewFlutterwaveGateway() *FlutterwaveGateway {
	return &FlutterwaveGateway{}
}

func (g *FlutterwaveGateway) Open(req Request) (*Invocation, error) {
	log.Printf("opening payment widget for tx_ref %s (amount KSh %.0f, options %s)",
		req.TxRef, req.Amount, req.PaymentOptions)
	return newInvocation(req, &inlineWidget{txRef: req.TxRef}), nil
}

// inlineWidget stands in for the browser-side modal. Closing is an
// instruction relayed to the frontend; the server records it so completion
// handling never runs against a widget still marked open.
type inlineWidget struct {
	mu     sync.Mutex
	txRef  string
	closed bool
}

func (w *inlineWidget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	log.Printf("payment widget closed for tx_ref %s", w.txRef)
}
