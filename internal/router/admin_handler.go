package router

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"maasaicraft.co.ke/shop/api/pkg/ai"
	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/models"
	"maasaicraft.co.ke/shop/api/pkg/mongo"
	"maasaicraft.co.ke/shop/api/pkg/orders"
	"maasaicraft.co.ke/shop/api/pkg/redis"
	"maasaicraft.co.ke/shop/api/pkg/validation"
)

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin checks the shop owner's credentials and issues a session token.
func AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || passwordHash == "" {
		log.Println("Admin login attempted but ADMIN_EMAIL/ADMIN_PASSWORD_HASH are not configured")
		c.JSON(http.StatusServiceUnavailable, global.ErrorResponse("Admin access is not configured", nil))
		return
	}

	if req.Email != adminEmail ||
		bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
		return
	}

	token := uuid.NewString()
	if err := redis.StoreAdminToken(c.Request.Context(), token, req.Email); err != nil {
		log.Printf("Error storing admin token: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create session", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"token": token}))
}

func AdminLogout(c *gin.Context) {
	token := c.GetString("admin_token")
	if err := redis.DeleteAdminToken(c.Request.Context(), token); err != nil {
		log.Printf("Error deleting admin token: %v", err)
	}
	c.JSON(http.StatusOK, global.SuccessResponse(nil))
}

// GetAdminOrders lists the orders recorded by the payment backend.
func GetAdminOrders(c *gin.Context) {
	orderList, err := ordersClient.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching orders from backend: %v", err)
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(orderList))
}

// GetSalesAnalytics aggregates the recorded orders into revenue, status and
// top-item figures.
func GetSalesAnalytics(c *gin.Context) {
	orderList, err := ordersClient.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching orders for analytics: %v", err)
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(orders.Summarize(orderList)))
}

// GenerateAISalesReport runs the sales summary through the AI service for
// narrative insights.
func GenerateAISalesReport(c *gin.Context) {
	orderList, err := ordersClient.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching orders for AI report: %v", err)
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}

	summary := orders.Summarize(orderList)
	report, err := ai.GenerateSalesReport(c.Request.Context(), &summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to generate sales report", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(report))
}

// GenerateAIInventoryReport analyses catalog stock levels; pass
// ?alerts_only=true to restrict it to products running low.
func GenerateAIInventoryReport(c *gin.Context) {
	alertsOnly := c.Query("alerts_only") == "true"

	products, err := mongo.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get products", nil))
		return
	}

	report, err := ai.GenerateInventoryReport(c.Request.Context(), products, alertsOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to generate inventory report", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(report))
}

// CreateProduct adds a catalog item, assigning the next product id.
func CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	product, err := mongo.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create product", nil))
		return
	}

	if cacheErr := redis.CacheSingleProduct(c.Request.Context(), product); cacheErr != nil {
		log.Printf("Warning: Failed to cache new product in Redis: %v", cacheErr)
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(product))
}

// AdjustProductStock applies a relative stock change, floored at zero.
func AdjustProductStock(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID < 1 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "id", Message: "Product id must be a positive integer", Code: "invalid_format"},
		}))
		return
	}

	var req models.AdjustStockRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	product, err := mongo.AdjustStock(c.Request.Context(), productID, req.Delta)
	if err != nil {
		if err == mongo.ErrProductNotFound {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", nil))
			return
		}
		log.Printf("Error adjusting stock: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to adjust stock", nil))
		return
	}

	// Stale price or stock in the cache would mislead the storefront
	if cacheErr := redis.RemoveProductFromCache(c.Request.Context(), product); cacheErr != nil {
		log.Printf("Warning: Failed to invalidate product cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(product))
}
