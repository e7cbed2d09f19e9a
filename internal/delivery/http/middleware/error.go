package middleware

import (
	"errors"
	"fmt"

	"placement-portal/internal/pkg/apperr"
	"placement-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// StatusFor maps an apperr type onto an HTTP status.
func StatusFor(t apperr.Type) int {
	switch t {
	case apperr.TypeInvalidInput:
		return fiber.StatusBadRequest
	case apperr.TypeUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.TypeNotFound:
		return fiber.StatusNotFound
	case apperr.TypeUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware renders handler errors into the response envelope. Messages of
// 5xx responses are replaced by a generic one and the cause is logged.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.String("request_id", requestID(c)),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			fields := []zap.Field{
				zap.String("request_id", requestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			}
			var de *apperr.Error
			if errors.As(err, &de) && len(de.Stack) > 0 {
				fields = append(fields, zap.ByteString("stack", de.Stack))
			}
			m.logger.Error("request failed", fields...)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		return masked(appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		return masked(StatusFor(domainErr.Type), domainErr.Message, nil)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return masked(status, fiberErr.Message, nil)
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

func masked(status int, msg string, data interface{}) (int, string, interface{}) {
	if status >= 500 {
		return status, response.DefaultMessage(status), nil
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	return status, msg, data
}
