package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// APIError is the error body for every non-2xx response. Field is set only
// for validation failures and names the first offending input field.
type APIError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func init() {
	// Report validation failures by json tag name, not Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, APIError{Message: message})
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "Internal server error")
}

func BadRequestField(c *gin.Context, message, field string) {
	c.JSON(http.StatusBadRequest, APIError{Message: message, Field: field})
}

// Validation maps a ShouldBindJSON error to a 400 with the first failing
// field. Later violations in the same request are not reported.
func Validation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		BadRequestField(c, fieldMessage(fe), fe.Field())
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		BadRequestField(c, fmt.Sprintf("%s has the wrong type", typeErr.Field), typeErr.Field)
		return
	}

	c.JSON(http.StatusBadRequest, APIError{Message: "Invalid request body"})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), "'", ""))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
