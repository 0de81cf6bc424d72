// Package response renders the JSON envelopes of the HTTP API.
package response

import (
	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any `json:"data"`
}

// PagedResponse is a successful response carrying one page of a list.
type PagedResponse struct {
	Data   any     `json:"data"`
	Paging *Paging `json:"paging"`
}

// Paging describes the returned page. CurrentPage echoes the request even past the last page.
type Paging struct {
	Size        int `json:"size"`
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
}

// ErrorResponse defines the structure for error responses. Data carries field-level detail.
type ErrorResponse struct {
	Errors string `json:"errors"`
	Data   any    `json:"data,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data})
}

// SuccessWithPaging returns a successful list response with paging metadata
func SuccessWithPaging(c echo.Context, statusCode int, data any, paging *Paging) error {
	return c.JSON(statusCode, PagedResponse{
		Data:   data,
		Paging: paging,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Errors: message,
		Data:   details,
	})
}
