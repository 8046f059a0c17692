package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Code      int         `json:"code"`
	ErrorCode string      `json:"error_code,omitempty"`
	Message   string      `json:"message,omitempty"`
	TraceID   string      `json:"trace_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

// RespondError answers with a validation-style failure; the error code is derived from the status.
func RespondError(c *gin.Context, code int, message string) {
	errorCode := CodeInternal
	switch code {
	case http.StatusBadRequest:
		errorCode = CodeValidation
	case http.StatusUnauthorized:
		errorCode = CodeUnauthorized
	case http.StatusForbidden:
		errorCode = CodeForbidden
	case http.StatusNotFound:
		errorCode = CodeNotFound
	case http.StatusTooManyRequests:
		errorCode = CodeRateLimited
	}
	c.JSON(code, APIResponse{
		Status:    "error",
		Code:      code,
		ErrorCode: errorCode,
		Message:   message,
		TraceID:   c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	status, code := Classify(err)

	message := err.Error()
	if errors.Is(err, ErrDatabaseError) || code == CodeInternal {
		// the cause is logged by the service, never echoed
		_ = c.Error(err)
		message = "Internal server error"
	}

	c.JSON(status, APIResponse{
		Status:    "error",
		Code:      status,
		ErrorCode: code,
		Message:   message,
		TraceID:   c.GetString("trace_id"),
	})
}
