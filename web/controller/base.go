// Package controller wires the blog API's HTTP handlers and translates
// domain errors into status codes and structured bodies at the boundary.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"blogapi/logger"
	"blogapi/web/entity"
	"blogapi/web/middleware"
	"blogapi/web/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a domain error onto its HTTP status and the generic
// {timestamp, message, path} body. Unexpected faults are logged with the
// request id and surfaced as an opaque 500.
func respondError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	var apiErr *service.APIError
	switch {
	case errors.As(err, &notFound):
		errorDetails(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &apiErr):
		errorDetails(c, apiErr.Status, apiErr.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		errorDetails(c, http.StatusUnauthorized, err.Error())
	default:
		logger.Errorf("request %s failed: %v", c.GetString(middleware.CtxRequestID), err)
		errorDetails(c, http.StatusInternalServerError, "internal server error")
	}
}

func errorDetails(c *gin.Context, status int, msg string) {
	c.JSON(status, entity.ErrorDetails{
		Timestamp: time.Now(),
		Message:   msg,
		Path:      c.Request.URL.Path,
	})
}

// bindJSON binds and validates the request body. Field-level validation
// failures become a field→message map instead of the generic error shape.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, fields)
	} else {
		errorDetails(c, http.StatusBadRequest, "malformed request body")
	}
	return false
}

func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	runes := []rune(structField)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return "must be at least " + fe.Param() + " characters long"
		}
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errorDetails(c, http.StatusBadRequest, "invalid "+name+" path parameter")
		return 0, false
	}
	return id, true
}

// queryInt reads an integer query parameter with a default.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.DefaultQuery(name, strconv.Itoa(def))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
