package handler

import (
	domainerrors "addressbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindBody decodes the JSON body into input. Any decoding failure is reported as an invalid body.
func bindBody(c echo.Context, input any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	return nil
}
