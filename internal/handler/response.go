package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents error codes returned outside of slack messages.
type ErrorCode string

const (
	ErrorBadRequest ErrorCode = "BAD_REQUEST"
)

// Slack response types.
const (
	ResponseInChannel = "in_channel"
	ResponseEphemeral = "ephemeral"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// RichMessage is a slack message answered to a slash command.
type RichMessage struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// HealthResponse represents health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, ErrorBadRequest, message, http.StatusBadRequest)
}

// InChannel sends a slack message visible to the whole channel.
func InChannel(c *gin.Context, text string) {
	c.JSON(http.StatusOK, RichMessage{ResponseType: ResponseInChannel, Text: text})
}

// Ephemeral sends a slack message visible only to the user who issued the command.
// Slack shows nothing for non-200 answers, so failures are reported this way too.
func Ephemeral(c *gin.Context, text string) {
	c.JSON(http.StatusOK, RichMessage{ResponseType: ResponseEphemeral, Text: text})
}
