package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"maasaicraft.co.ke/shop/api/pkg/checkout"
	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/orders"
	"maasaicraft.co.ke/shop/api/pkg/validation"
)

var Router *gin.Engine

// Shared handler dependencies, wired up in Configure before routes run.
var (
	sessions     *checkout.Store
	flow         *checkout.Orchestrator
	ordersClient *orders.Client
	validate     *validatorv10.Validate
)

// Configure injects the services the handlers depend on.
func Configure(store *checkout.Store, orchestrator *checkout.Orchestrator, remoteOrders *orders.Client) {
	sessions = store
	flow = orchestrator
	ordersClient = remoteOrders
	validate = validation.New()
}

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     global.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		products := api.Group("/products")
		{
			products.GET("/", GetAllProducts)
			products.GET("/:id", GetProductByID)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", GetAllCategories)
		}

		api.POST("/sessions", CreateSession)

		session := api.Group("/sessions/:sessionId")
		session.Use(SessionMiddleware())
		{
			session.DELETE("/", EndSession)

			cart := session.Group("/cart")
			{
				cart.GET("/", GetCart)
				cart.POST("/items", AddToCart)
				cart.PUT("/items/:productId", UpdateCartItem)
				cart.DELETE("/items/:productId", RemoveFromCart)
			}

			chk := session.Group("/checkout")
			{
				chk.POST("/", BeginCheckout)
				chk.POST("/details", SubmitDetails)
				chk.POST("/back", StepBack)
				chk.POST("/close", ClosePanel)
			}

			payment := session.Group("/payment")
			{
				payment.POST("/", StartPayment)
				payment.POST("/callback", PaymentCallback)
				payment.POST("/close", DismissPayment)
			}
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", AdminLogin)

			protected := admin.Group("/")
			protected.Use(AdminAuthMiddleware())
			{
				protected.POST("/logout", AdminLogout)
				protected.GET("/orders", GetAdminOrders)
				protected.POST("/products", CreateProduct)
				protected.PATCH("/products/:id/stock", AdjustProductStock)

				analytics := protected.Group("/analytics")
				{
					analytics.GET("/sales", GetSalesAnalytics)

					// AI-powered analytics endpoints
					aiAnalytics := analytics.Group("/ai")
					{
						aiAnalytics.GET("/sales-report", GenerateAISalesReport)
						aiAnalytics.GET("/inventory-report", GenerateAIInventoryReport)
					}
				}
			}
		}
	}
}
