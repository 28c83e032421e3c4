package model

import "github.com/labstack/echo/v4"

// ErrorResponse is the envelope returned for every failed request.
//
// swagger:model
type ErrorResponse struct {

	// Always false for errors
	Success bool `json:"success"`

	// A description of what went wrong
	Error string `json:"error"`

	// Diagnostic output from the provisioning tool, when available
	Details string `json:"details,omitempty"`
}

// Error sends an error response to the caller.
func Error(ctx echo.Context, msg string, code int) error {
	return ctx.JSON(code, ErrorResponse{Success: false, Error: msg})
}

// ErrorWithDetails sends an error response that carries diagnostic output.
func ErrorWithDetails(ctx echo.Context, msg, details string, code int) error {
	return ctx.JSON(code, ErrorResponse{Success: false, Error: msg, Details: details})
}

// Success sends a success response to the caller.
func Success(ctx echo.Context, body interface{}, code int) error {
	return ctx.JSON(code, body)
}
