package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maasaicraft.co.ke/shop/api/pkg/checkout"
	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/models"
	"maasaicraft.co.ke/shop/api/pkg/validation"
)

// BeginCheckout moves the session from the cart view into the details step.
func BeginCheckout(c *gin.Context) {
	session := currentSession(c)

	if err := session.BeginCheckout(); err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse(err.Error(), nil))
			return
		}
		c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]checkout.Stage{"stage": session.Stage()}))
}

// SubmitDetails records the customer's contact details and advances to the
// payment step.
func SubmitDetails(c *gin.Context) {
	session := currentSession(c)

	var details models.CustomerDetails
	if err := validation.BindAndValidate(c, &details, validate); err != nil {
		return
	}

	if err := session.SubmitDetails(details); err != nil {
		var ve *checkout.ValidationError
		if errors.As(err, &ve) {
			fields := make([]global.ValidationError, 0, len(ve.MissingFields)+1)
			for _, f := range ve.MissingFields {
				fields = append(fields, global.ValidationError{Field: f, Message: f + " is required", Code: "required"})
			}
			if ve.InvalidPhone {
				fields = append(fields, global.ValidationError{
					Field: "phone", Message: "enter a valid Kenyan phone number", Code: "kenyan_phone",
				})
			}
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid customer details", fields))
			return
		}
		c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]checkout.Stage{"stage": session.Stage()}))
}

// StepBack moves one step towards the cart, keeping everything entered.
func StepBack(c *gin.Context) {
	session := currentSession(c)
	session.Back()
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]checkout.Stage{"stage": session.Stage()}))
}

// ClosePanel abandons the checkout flow without touching the cart.
func ClosePanel(c *gin.Context) {
	session := currentSession(c)
	session.ClosePanel()
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]checkout.Stage{"stage": session.Stage()}))
}
