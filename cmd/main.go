package main

import (
	"log"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"maasaicraft.co.ke/shop/api/internal/router"
	"maasaicraft.co.ke/shop/api/pkg/ai"
	"maasaicraft.co.ke/shop/api/pkg/checkout"
	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/mongo"
	"maasaicraft.co.ke/shop/api/pkg/notify"
	"maasaicraft.co.ke/shop/api/pkg/orders"
	"maasaicraft.co.ke/shop/api/pkg/payment"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()
	mongo.SeedCatalogOnStartup()
	ai.InitializeAIService()

	verifier := payment.NewVerificationClient(global.GetVerifyEndpoint(), global.GetVerifyAPIKey())
	notifier := notify.NewDispatcher(smsTransport())
	orchestrator := checkout.NewOrchestrator(
		global.GetFlutterwavePublicKey(),
		payment.NewFlutterwaveGateway(),
		verifier,
		notifier,
	)
	remoteOrders := orders.NewClient(global.GetOrdersEndpoint(), global.GetVerifyAPIKey())

	router.Configure(checkout.NewStore(), orchestrator, remoteOrders)
	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// smsTransport wires the SMS queue when RabbitMQ is configured and falls
// back to log-only delivery otherwise.
func smsTransport() notify.Transport {
	amqpURL := global.GetEnvOrDefault("AMQP_URL", "")
	if amqpURL == "" {
		log.Println("AMQP_URL not set, SMS notifications will be logged only")
		return notify.LogTransport{}
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		log.Printf("Warning: could not connect to RabbitMQ (%v), SMS notifications will be logged only", err)
		return notify.LogTransport{}
	}

	queue := global.GetEnvOrDefault("SMS_QUEUE", "sms_notifications")
	transport, err := notify.NewAMQPTransport(conn, queue)
	if err != nil {
		log.Printf("Warning: could not set up SMS queue (%v), SMS notifications will be logged only", err)
		return notify.LogTransport{}
	}

	log.Printf("SMS notifications publishing to queue %s", queue)
	return transport
}
