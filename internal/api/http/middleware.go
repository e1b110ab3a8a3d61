package http

import (
	"context"
	"errors"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/nba-team-service/internal/observability"
	apperrors "github.com/spec-kit/nba-team-service/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware turns returned errors and panics into a bare status
// code. Error responses never carry a body.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err == nil {
				return
			}

			status, code := statusFor(err)
			metrics.RecordError(c.Route().Path, c.Method(), code)
			if status >= fiber.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			c.Status(status)
			c.Response().ResetBody()
			err = nil
		}()
		return c.Next()
	}
}

// statusFor prefers a DomainError over any fiber.Error it wraps.
func statusFor(err error) (int, string) {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.HTTPStatus, domainErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, "HTTP_" + strconv.Itoa(fiberErr.Code)
	}
	domainErr = apperrors.ToDomainError(err)
	return domainErr.HTTPStatus, domainErr.Code
}
