package router

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"maasaicraft.co.ke/shop/api/pkg/cart"
	"maasaicraft.co.ke/shop/api/pkg/checkout"
	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/mongo"
	"maasaicraft.co.ke/shop/api/pkg/validation"
)

// cartView is the cart payload the storefront renders: lines in stable
// order, the computed totals and the badge count.
type cartView struct {
	Lines      []*cart.Line   `json:"lines"`
	Totals     cart.Totals    `json:"totals"`
	TotalItems int            `json:"total_items"`
	Stage      checkout.Stage `json:"stage"`
}

func viewOf(session *checkout.Session) cartView {
	c := session.Cart()
	return cartView{
		Lines:      c.Lines(),
		Totals:     c.ComputeTotals(),
		TotalItems: c.TotalItems(),
		Stage:      session.Stage(),
	}
}

// CreateSession opens a fresh shopping session and returns its id.
func CreateSession(c *gin.Context) {
	session := sessions.Create()
	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]string{"session_id": session.ID}))
}

func EndSession(c *gin.Context) {
	session := currentSession(c)
	sessions.Remove(session.ID)
	c.JSON(http.StatusOK, global.SuccessResponse(nil))
}

func GetCart(c *gin.Context) {
	session := currentSession(c)
	c.JSON(http.StatusOK, global.SuccessResponse(viewOf(session)))
}

type addToCartRequest struct {
	ProductID    int    `json:"product_id" validate:"required,min=1"`
	SelectedSize string `json:"selected_size"`
}

// AddToCart looks the product up in the catalog and merges it into the
// session's cart. The line snapshots name, price and image at add time.
func AddToCart(c *gin.Context) {
	session := currentSession(c)

	var req addToCartRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	product, err := mongo.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, mongo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
				{Field: "product_id", Message: "No product exists with this id", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching product for cart add: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add item to cart", nil))
		return
	}

	size := req.SelectedSize
	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}
	if size != "" && !product.HasSize(size) {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid size", []global.ValidationError{
			{Field: "selected_size", Message: "Product is not available in this size", Code: "invalid_size"},
		}))
		return
	}

	session.Cart().AddItem(product, size)
	c.JSON(http.StatusOK, global.SuccessResponse(viewOf(session)))
}

type updateQuantityRequest struct {
	SelectedSize string `json:"selected_size"`
	Quantity     int    `json:"quantity"`
}

// UpdateCartItem sets the quantity on a cart line. A quantity of zero or
// less removes the line.
func UpdateCartItem(c *gin.Context) {
	session := currentSession(c)

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID < 1 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "productId", Message: "Product id must be a positive integer", Code: "invalid_format"},
		}))
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	session.Cart().UpdateQuantity(productID, req.SelectedSize, req.Quantity)
	c.JSON(http.StatusOK, global.SuccessResponse(viewOf(session)))
}

// RemoveFromCart drops a cart line; removing an absent line is a no-op.
func RemoveFromCart(c *gin.Context) {
	session := currentSession(c)

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID < 1 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product id", []global.ValidationError{
			{Field: "productId", Message: "Product id must be a positive integer", Code: "invalid_format"},
		}))
		return
	}

	session.Cart().RemoveItem(productID, c.Query("size"))
	c.JSON(http.StatusOK, global.SuccessResponse(viewOf(session)))
}
