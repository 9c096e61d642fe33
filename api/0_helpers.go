package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/studentdb/api/apistudentv1"
	"github.com/fulldump/studentdb/database"
	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/service"
	"github.com/fulldump/studentdb/store"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening {
				box.SetError(ctx, fmt.Errorf("%w: opening", service.ErrDatabaseUnavailable))
				return
			}
			if status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: closing", service.ErrDatabaseUnavailable))
				return
			}
			next(ctx)
		}
	}
}

// describeError picks the status code and human description for err.
func describeError(ctx context.Context, err error) (int, string) {

	var syntaxErr *json.SyntaxError
	var parseErr *store.ParseError
	var ioErr *store.IOError

	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "user is not authenticated"
	case errors.Is(err, box.ErrResourceNotFound):
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	case errors.Is(err, box.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	case errors.As(err, &syntaxErr):
		return http.StatusBadRequest, "Malformed JSON"
	case errors.Is(err, record.ErrUnknownField), errors.Is(err, apistudentv1.ErrBadRequest):
		return http.StatusBadRequest, "Invalid query"
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, fmt.Sprintf("student data file is corrupted at line %d", parseErr.Line)
	case errors.Is(err, service.ErrDatabaseUnavailable):
		return http.StatusServiceUnavailable, "temporary unavailable"
	case errors.As(err, &ioErr):
		return http.StatusInternalServerError, "storage unavailable"
	}

	return http.StatusInternalServerError, "Unexpected error"
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status, description := describeError(ctx, err)

		w := box.GetResponse(ctx)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(PrettyError{
			Message:     err.Error(),
			Description: description,
		})
	}
}
