package handlerutil

import (
	"errors"

	"planboard/cmd/server/handlers/httperr"
	"planboard/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NotFoundError wraps a domain not-found sentinel in a 404 response.
func NotFoundError(err error) error {
	return httperr.Fail(httperr.E{
		Status:  404,
		Message: err.Error(),
	})
}

// ParseAndValidateBody parses request body and validates it
func ParseAndValidateBody(c *fiber.Ctx, req any, validator *validator.Validate, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validator.Struct(req); err != nil {
		logger.L().Warn("request validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// ParseAndValidateQuery parses query parameters and validates them
func ParseAndValidateQuery(c *fiber.Ctx, req any, validator *validator.Validate, handlerName string) error {
	if err := c.QueryParser(req); err != nil {
		logger.L().Warn("failed to parse query params", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validator.Struct(req); err != nil {
		logger.L().Warn("query validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// HandleServiceError maps service sentinels onto HTTP responses: the
// notFoundErr becomes a 404, any of badRequestErrs a 400, everything else
// a 500.
func HandleServiceError(err error, handlerName string, notFoundErr error, badRequestErrs ...error) error {
	if notFoundErr != nil && errors.Is(err, notFoundErr) {
		logger.L().Info("resource not found", "handler", handlerName, "error", err)
		return NotFoundError(notFoundErr)
	}

	for _, bad := range badRequestErrs {
		if errors.Is(err, bad) {
			logger.L().Info("rejected invalid input", "handler", handlerName, "error", err)
			return httperr.Fail(httperr.E{
				Status:  400,
				Message: err.Error(),
			})
		}
	}

	logger.L().Error("service operation failed", "handler", handlerName, "error", err)
	return httperr.Fail(httperr.E{
		Status:  500,
		Message: err.Error(),
	})
}
