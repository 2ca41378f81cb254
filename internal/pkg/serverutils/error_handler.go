package serverutils

import (
	"errors"

	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidateRequest runs struct validation and maps failures to a 400.
func ValidateRequest(req interface{}) error {
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// NewErrorHandler renders every error returned by a handler in the BaseResponse envelope.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else if validation.IsValidationError(err) {
			code = fiber.StatusBadRequest
			message = err.Error()
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("SERVER", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
