package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the error half of the API envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// SuccessResponse writes {success:true, data:...} with the given status.
func SuccessResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse writes {success:false, error:{message, code}} with the given status.
func ErrorResponse(c *fiber.Ctx, status int, message, code string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   ErrorBody{Message: message, Code: code},
	})
}
