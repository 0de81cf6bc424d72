package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/delivery/http/response"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the routes nested under a contact.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// Create handles POST /api/contacts/:contactId/addresses.
func (h *AddressHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	var input usecase.CreateAddressInput
	if err := bindBody(c, &input); err != nil {
		return err
	}
	input.ContactID = c.Param("contactId")

	address, err := h.addressUC.Create(ctx, user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

// Get handles GET /api/contacts/:contactId/addresses/:addressId.
func (h *AddressHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	address, err := h.addressUC.Get(ctx, user, addressIDFromPath(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// Update handles PATCH /api/contacts/:contactId/addresses/:addressId.
func (h *AddressHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	var input usecase.UpdateAddressInput
	if err := bindBody(c, &input); err != nil {
		return err
	}
	input.ContactID = c.Param("contactId")
	input.ID = c.Param("addressId")

	address, err := h.addressUC.Update(ctx, user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// Remove handles DELETE /api/contacts/:contactId/addresses/:addressId.
func (h *AddressHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := h.addressUC.Remove(ctx, user, addressIDFromPath(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, true)
}

// List handles GET /api/contacts/:contactId/addresses.
func (h *AddressHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.List(ctx, user, &usecase.ListAddressInput{ContactID: c.Param("contactId")})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressResponses(addresses))
}

func addressIDFromPath(c echo.Context) *usecase.AddressIDInput {
	return &usecase.AddressIDInput{
		ContactID: c.Param("contactId"),
		AddressID: c.Param("addressId"),
	}
}
