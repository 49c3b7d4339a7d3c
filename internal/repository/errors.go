package repository

import (
	"bytes"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
)

// ParseAPIError converts an error answer into *domain.APIError.
// Bodies that are not an API error document keep their raw text as the message.
func ParseAPIError(status int, body []byte) *domain.APIError {
	apiErr := &domain.APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil {
		apiErr = &domain.APIError{}
	}
	if apiErr.ClientMessage == "" {
		apiErr.ClientMessage = firstNonEmpty(
			apiErr.DeveloperMessage,
			apiErr.ExceptionMessage,
			string(bytes.TrimSpace(body)),
			http.StatusText(status),
		)
	}
	if apiErr.HTTPStatus == 0 {
		apiErr.HTTPStatus = status
	}
	return apiErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
