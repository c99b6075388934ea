package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maasaicraft.co.ke/shop/api/pkg/checkout"
	"maasaicraft.co.ke/shop/api/pkg/global"
	"maasaicraft.co.ke/shop/api/pkg/payment"
	"maasaicraft.co.ke/shop/api/pkg/validation"
)

type startPaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=mpesa card"`
}

// StartPayment opens a gateway invocation for the session and returns the
// widget configuration the storefront feeds to the inline checkout.
func StartPayment(c *gin.Context) {
	session := currentSession(c)

	var req startPaymentRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	inv, err := flow.StartPayment(session, payment.Method(req.Method))
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrPaymentInFlight):
			c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		case errors.Is(err, checkout.ErrInvalidStage):
			c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		default:
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to start payment", nil))
		}
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(inv.Request))
}

type paymentCallbackRequest struct {
	Status        string `json:"status" validate:"required"`
	TransactionID string `json:"transaction_id"`
	TxRef         string `json:"tx_ref"`
}

// PaymentCallback settles the outstanding invocation with the provider's
// completion report. A verified successful payment clears the cart; a
// failed or unverifiable one leaves it intact so the customer can retry.
func PaymentCallback(c *gin.Context) {
	session := currentSession(c)

	var req paymentCallbackRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	result := payment.Result{
		Status:        req.Status,
		TransactionID: req.TransactionID,
		TxRef:         req.TxRef,
	}

	err := flow.CompletePayment(c.Request.Context(), session, result)
	if err == nil {
		c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
			"outcome": "success",
			"message": "Payment successful! Thank you for your order.",
			"stage":   session.Stage(),
		}))
		return
	}

	var pf *checkout.PaymentFailure
	var vf *checkout.VerificationFailure
	switch {
	case errors.Is(err, checkout.ErrNoPaymentInFlight):
		c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
	case errors.As(err, &pf):
		c.JSON(http.StatusPaymentRequired, global.ErrorResponse("Payment failed. Please try again.", []global.ValidationError{
			{Field: "status", Message: pf.Error(), Code: "payment_failed"},
		}))
	case errors.As(err, &vf):
		c.JSON(http.StatusBadGateway, global.ErrorResponse(
			"Payment verification failed. Please contact support if your account was debited.",
			[]global.ValidationError{
				{Field: "transaction_id", Message: vf.Error(), Code: "verification_failed"},
			}))
	default:
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process payment result", nil))
	}
}

// DismissPayment records that the customer closed the payment widget
// without paying. The cart and checkout progress stay as they were.
func DismissPayment(c *gin.Context) {
	session := currentSession(c)

	if err := flow.DismissPayment(session); err != nil {
		c.JSON(http.StatusConflict, global.ErrorResponse(err.Error(), nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"outcome": "dismissed",
		"stage":   session.Stage(),
	}))
}
