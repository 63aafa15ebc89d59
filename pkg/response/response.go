package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-nlp/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends err as a JSON error. An *errors.HTTPError keeps its own status;
// anything else is reported as 400.
func Error(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		status = httpErr.Code
	}

	if status >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error without leaking err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends errors.ErrTooManyRequests and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.Abort()
	Error(c, pkgErrors.ErrTooManyRequests)
}
