package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/console/internal/blobstore"
	"github.com/smallbiznis/console/internal/observability/logger"
	"go.uber.org/zap"
)

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_ERROR"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrNotFound        = errors.New("not_found")
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	OK    bool      `json:"ok"`
	Error errorBody `json:"error"`
}

// ErrorHandlingMiddleware renders the last handler error as an error envelope.
// Server errors are logged with their cause; the client only sees a generic message.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, body := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			logger.FromContext(c.Request.Context()).Error("request failed",
				zap.String("route", c.FullPath()),
				zap.Error(lastErr.Err),
			)
		}
		c.AbortWithStatusJSON(status, errorResponse{OK: false, Error: body})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorBody) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, errorBody{Code: CodeInternal, Message: "internal server error"}
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, errorBody{Code: CodeUnauthenticated, Message: "authentication required"}
	case isInvalidRequestError(err):
		return http.StatusBadRequest, errorBody{Code: CodeInvalidRequest, Message: "invalid request"}
	case isNotFoundError(err):
		return http.StatusNotFound, errorBody{Code: CodeNotFound, Message: "not found"}
	default:
		return http.StatusInternalServerError, errorBody{Code: CodeInternal, Message: "internal server error"}
	}
}

func isInvalidRequestError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, blobstore.ErrInvalidName)
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, blobstore.ErrNotFound)
}

func classifyErrorForLog(err error) string {
	_, body := mapError(err)
	return body.Code
}
