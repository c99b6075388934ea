package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"maasaicraft.co.ke/shop/api/pkg/global"
)

// BindAndValidate binds the JSON body into `out` and runs validation.
// If either step fails, it writes a 400 response and returns an error for
// the handler to short-circuit on.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request body", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return err
	}

	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Validation failed", ErrorsToFields(err)))
		return err
	}
	return nil
}

// ErrorsToFields converts validator errors into the API's field error shape.
func ErrorsToFields(err error) []global.ValidationError {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return []global.ValidationError{{Field: "body", Message: err.Error(), Code: "validation_error"}}
	}
	out := make([]global.ValidationError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, global.ValidationError{
			Field:   fe.Field(),
			Message: fe.Error(),
			Code:    fe.Tag(),
		})
	}
	return out
}
