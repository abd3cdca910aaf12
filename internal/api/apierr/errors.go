package apierr

import (
	"errors"
	"net/http"

	"github.com/mcoot/machgame/internal/api/response"
	"github.com/mcoot/machgame/internal/model"
)

// Plain-text bodies for transport errors
const (
	BodyBadRequest    = "400 Bad Request"
	BodyNotFound      = "404 Not Found"
	BodyInternalError = "500 Internal Server Error"
)

// httpError pairs an HTTP status code with a plain-text body
type httpError struct {
	status int
	body   string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.body
}

// WriteError writes a plain-text error response. Only transport failures come
// through here; domain misses are normal 200 replies.
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	response.Text(w, he.status, he.body)
}

// Status returns the status code WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, model.ErrMalformedAction):
		return &httpError{http.StatusBadRequest, BodyBadRequest}
	case errors.As(err, &tooLarge):
		return &httpError{http.StatusBadRequest, BodyBadRequest}
	default:
		return &httpError{http.StatusInternalServerError, BodyInternalError}
	}
}

// NewBadRequestError creates an error for a request body that could not be read
func NewBadRequestError() error {
	return &httpError{http.StatusBadRequest, BodyBadRequest}
}

// NewNotFoundError creates an error for an unknown route or missing static file
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, BodyNotFound}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, BodyInternalError}
}
