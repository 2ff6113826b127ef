// Package response writes JSON bodies. Successful responses carry the raw
// payload; failures carry {detail, code}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "planeacion/backend/pkg/errors"
)

// ErrorBody error response shape. detail is a string for domain failures and
// a list of field errors for 422.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
	Code   int         `json:"code"`
}

// FieldError one binding failure
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

const (
	CodeValidation  = 42200
	CodeInternal    = 50000
	CodeBadParam    = 40000
	CodeUnavailable = 50300
)

// ── success ──

// OK 200
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── errors ──

// Error writes a generic error body.
func Error(c *gin.Context, httpStatus int, code int, detail interface{}) {
	c.JSON(httpStatus, ErrorBody{Detail: detail, Code: code})
}

// AbortError writes an error body and stops the handler chain.
func AbortError(c *gin.Context, httpStatus int, code int, detail interface{}) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Detail: detail, Code: code})
}

// Unprocessable 422 for request schema violations.
func Unprocessable(c *gin.Context, fields []FieldError) {
	Error(c, http.StatusUnprocessableEntity, CodeValidation, fields)
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadParam, message)
}

// InternalError 500. The cause is logged, never returned.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "Error interno del servidor")
}

// FromError translates a service error. AppErrors map to their kind's status;
// anything else is logged and becomes a 500.
func FromError(c *gin.Context, logger *zap.Logger, err error) {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Diag != "" {
			logger.Debug("request failed",
				zap.String("kind", appErr.Kind.String()),
				zap.Int("code", appErr.Code),
				zap.String("diag", appErr.Diag),
			)
		}
		Error(c, appErr.Kind.HTTPStatus(), appErr.Code, appErr.Message)
		return
	}

	logger.Error("unhandled error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalError(c)
}
