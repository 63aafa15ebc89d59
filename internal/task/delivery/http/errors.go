package http

import (
	"errors"
	"net/http"

	"task-nlp/internal/task"
	pkgErrors "task-nlp/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "request body must be JSON with a non-empty \"text\" field")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is empty")
	case errors.Is(err, task.ErrInvalidNow):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidNow.Error())
	case errors.Is(err, errInvalidBody):
		return errInvalidBody
	default:
		return pkgErrors.ErrInternalServerError
	}
}
