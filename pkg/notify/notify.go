package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Transport delivers one SMS confirmation. Implementations report failure
// through the returned error; the dispatcher decides what to do with it.
type Transport interface {
	Send(ctx context.Context, phoneNumber string, amount float64, txRef string) error
}

// Dispatcher sends the post-payment confirmation message. Dispatch is
// fire-and-forget: a transport failure is logged and swallowed so it can
// never fail an already-verified checkout.
type Dispatcher struct {
	transport Transport
}

func NewDispatcher(t Transport) *Dispatcher {
	return &Dispatcher{transport: t}
}

// Dispatch attempts the confirmation send and reports success; failures are
// logged only.
func (d *Dispatcher) Dispatch(ctx context.Context, phoneNumber string, amount float64, txRef string) bool {
	if err := d.transport.Send(ctx, phoneNumber, amount, txRef); err != nil {
		log.Printf("SMS notification error for ref %s: %v", txRef, err)
		return false
	}
	return true
}

// smsJob is the message published for the SMS worker to deliver.
type smsJob struct {
	PhoneNumber string  `json:"phone_number"`
	Amount      float64 `json:"amount"`
	TxRef       string  `json:"tx_ref"`
	Message     string  `json:"message"`
}

// AMQPTransport publishes SMS jobs to a RabbitMQ queue consumed by the
// notification worker.
type AMQPTransport struct {
	channel *amqp.Channel
	queue   string
}

func NewAMQPTransport(conn *amqp.Connection, queue string) (*AMQPTransport, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &AMQPTransport{channel: ch, queue: queue}, nil
}

func (t *AMQPTransport) Send(ctx context.Context, phoneNumber string, amount float64, txRef string) error {
	job := smsJob{
		PhoneNumber: phoneNumber,
		Amount:      amount,
		TxRef:       txRef,
		Message:     fmt.Sprintf("Payment of KSh %.0f successful. Ref: %s", amount, txRef),
	}
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal sms job: %w", err)
	}

	err = t.channel.PublishWithContext(ctx, "", t.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish sms job: %w", err)
	}
	return nil
}

func (t *AMQPTransport) Close() error {
	return t.channel.Close()
}

// LogTransport just logs the message. Used in development where no SMS
// provider is configured.
type LogTransport struct{}

func (LogTransport) Send(_ context.Context, phoneNumber string, amount float64, txRef string) error {
	log.Printf("SMS sent to %s: Payment of KSh %.0f successful. Ref: %s", phoneNumber, amount, txRef)
	return nil
}
