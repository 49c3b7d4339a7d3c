package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCommand  = errors.New("malformed command")
	ErrDirectoryMismatch = errors.New("identity count does not match request count")
	ErrDirectoryExchange = errors.New("users service exchange failed")
	ErrTeamExchange      = errors.New("teams service exchange failed")
	ErrNotImplemented    = errors.New("not implemented")
)

// APIError is the error body returned by the Users and Teams services.
type APIError struct {
	HTTPStatus        int      `json:"httpStatus"`
	InternalErrorCode string   `json:"internalErrorCode"`
	ClientMessage     string   `json:"clientMessage"`
	DeveloperMessage  string   `json:"developerMessage"`
	ExceptionMessage  string   `json:"exceptionMessage"`
	DetailErrors      []string `json:"detailErrors"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d, code %s): %s", e.HTTPStatus, e.InternalErrorCode, e.ClientMessage)
}

// MalformedCommandError reports a command whose mentions violate a team rule.
type MalformedCommandError struct {
	Found    int
	Expected int
	Message  string
}

func (e *MalformedCommandError) Error() string {
	return e.Message
}

// Is implements errors.Is support.
func (e *MalformedCommandError) Is(target error) bool {
	return target == ErrMalformedCommand
}

// DirectoryMismatchError reports that the Users Service answered with a different
// number of users than was asked for.
type DirectoryMismatchError struct {
	Expected int
	Actual   int
}

func (e *DirectoryMismatchError) Error() string {
	return fmt.Sprintf("%s: requested %d, received %d", ErrDirectoryMismatch, e.Expected, e.Actual)
}

// Is implements errors.Is support.
func (e *DirectoryMismatchError) Is(target error) bool {
	return target == ErrDirectoryMismatch
}

// DirectoryExchangeError wraps a failed call to the Users Service.
type DirectoryExchangeError struct {
	API *APIError
	Err error
}

func (e *DirectoryExchangeError) Error() string {
	if e.API != nil {
		return fmt.Sprintf("%s: %s", ErrDirectoryExchange, e.API.ClientMessage)
	}
	return fmt.Sprintf("%s: %v", ErrDirectoryExchange, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *DirectoryExchangeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *DirectoryExchangeError) Is(target error) bool {
	return target == ErrDirectoryExchange
}

// TeamExchangeError wraps a failed call to the Teams Service, or a Teams Service
// answer that does not match the request.
type TeamExchangeError struct {
	API     *APIError
	Message string
	Err     error
}

func (e *TeamExchangeError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.API != nil:
		return fmt.Sprintf("%s: %s", ErrTeamExchange, e.API.ClientMessage)
	default:
		return fmt.Sprintf("%s: %v", ErrTeamExchange, e.Err)
	}
}

// Unwrap returns the underlying transport error.
func (e *TeamExchangeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *TeamExchangeError) Is(target error) bool {
	return target == ErrTeamExchange
}

// User-facing texts for exchange failures that carry no service error body.
const (
	MsgUsersServiceUnavailable = "Users Service is unavailable, please try again later."
	MsgTeamsServiceUnavailable = "Teams Service is unavailable, please try again later."
)

// UserMessage returns the text shown to the slack user for err.
// Transport failures are reported generically so service addresses stay internal.
func UserMessage(err error) string {
	var teamErr *TeamExchangeError
	if errors.As(err, &teamErr) {
		switch {
		case teamErr.API != nil && teamErr.API.ClientMessage != "":
			return teamErr.API.ClientMessage
		case teamErr.Message != "":
			return teamErr.Message
		default:
			return MsgTeamsServiceUnavailable
		}
	}
	var dirErr *DirectoryExchangeError
	if errors.As(err, &dirErr) {
		if dirErr.API != nil && dirErr.API.ClientMessage != "" {
			return dirErr.API.ClientMessage
		}
		return MsgUsersServiceUnavailable
	}
	return err.Error()
}
