package apierr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/zerror"
)

// ErrorResponse is the error response for the API.
type ErrorResponse struct {
	Error string `json:"error"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

// New maps err to a response. Typed application errors keep their status
// and message; anything else is a 500 carrying the underlying error text.
//
// TODO: stop exposing storage error text once clients no longer depend on it.
func New(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Error:      zErr.Msg(),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	return ErrorResponse{
		Error:      underlyingMessage(err),
		StatusCode: http.StatusInternalServerError,
	}
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// underlyingMessage returns the PostgreSQL message for server errors and the
// innermost error text otherwise, without the wrapping context.
func underlyingMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}

	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
