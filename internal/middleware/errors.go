package middleware

import (
	"net/http"

	"hris-payroll/internal/shared/apperror"
	"hris-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
	ErrTooManyCalls  = apperror.New("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
	ErrInProgress    = apperror.New("PROCESSING", "The same request is still being processed", http.StatusConflict)
)

func abort(c *gin.Context, err *apperror.AppError, details any) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, details)
	c.Abort()
}
