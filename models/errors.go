package models

import "net/http"

const (
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Not Found"
	// MsgInternalServerError is the body of every 500. Unexpected failures are plain errors,
	// so there is no rejection type for it.
	MsgInternalServerError = "Internal Server Error"
)

// ErrorBadRequest rejects input that is malformed or outside an allow-list.
type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string { return messageOr(e.Message, MsgBadRequest) }

func (e ErrorBadRequest) StatusCode() int { return http.StatusBadRequest }

// ErrorNotFound is returned when a lookup by key matches zero rows.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return messageOr(e.Message, MsgNotFound) }

func (e ErrorNotFound) StatusCode() int { return http.StatusNotFound }

func NewBadRequest() error { return ErrorBadRequest{Message: MsgBadRequest} }

func NewNotFound() error { return ErrorNotFound{Message: MsgNotFound} }

func messageOr(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
