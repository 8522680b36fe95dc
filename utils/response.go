package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every JSON API response
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// JSONError sends a structured error response. A nil err reports the message alone.
func JSONError(c *gin.Context, status int, err error, message string) {
	body := Envelope{Status: status, Message: message, Error: message}
	if err != nil {
		body.Error = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}
