package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Kind:    KindOf(code),
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError renders err as a typed failure. Non-business errors are logged and
// hidden behind a generic 500.
func FromError(c *gin.Context, err error) {
	code := CodeOf(err)
	if code == "" {
		slog.Error("unhandled error",
			"path", c.FullPath(),
			"error", err,
		)
		Internal(c, "internal_error", "Error interno.")
		return
	}

	var storage *StorageError
	if errors.As(err, &storage) {
		slog.Error("storage failure",
			"path", c.FullPath(),
			"error", storage.Err,
		)
	}

	info := lookup(code)
	body := HTTPError{
		Code:    code,
		Kind:    info.kind,
		Message: info.message,
	}

	var insufficient *InsufficientPaymentError
	if errors.As(err, &insufficient) {
		body.Details = gin.H{
			"due":       insufficient.Due.StringFixed(2),
			"tendered":  insufficient.Tendered.StringFixed(2),
			"shortfall": insufficient.Shortfall.StringFixed(2),
		}
	}

	c.JSON(info.status, body)
}
