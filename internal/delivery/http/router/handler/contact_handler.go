package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/delivery/http/response"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the contact routes.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler.
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	var input usecase.CreateContactInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	contact, err := h.contactUC.Create(ctx, user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContactResponse(contact))
}

// Get handles GET /api/contacts/:contactId.
func (h *ContactHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	contact, err := h.contactUC.Get(ctx, user, &usecase.ContactIDInput{ContactID: c.Param("contactId")})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact))
}

// Update handles PATCH /api/contacts/:contactId. The path id wins over any id in the body.
func (h *ContactHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	var input usecase.UpdateContactInput
	if err := bindBody(c, &input); err != nil {
		return err
	}
	input.ID = c.Param("contactId")

	contact, err := h.contactUC.Update(ctx, user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact))
}

// Delete handles DELETE /api/contacts/:contactId.
func (h *ContactHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := h.contactUC.Delete(ctx, user, &usecase.ContactIDInput{ContactID: c.Param("contactId")}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, true)
}

// Search handles GET /api/contacts.
func (h *ContactHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := deliverycontext.MustCurrentUser(ctx)
	if err != nil {
		return err
	}

	input, err := searchInputFromQuery(c)
	if err != nil {
		return err
	}

	out, err := h.contactUC.Search(ctx, user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithPaging(c, http.StatusOK, toContactResponses(out.Contacts), &response.Paging{
		Size:        out.Paging.Size,
		CurrentPage: out.Paging.Page,
		TotalPage:   out.Paging.TotalPage,
	})
}

// searchInputFromQuery distinguishes an absent filter (nil) from a present empty one,
// which then fails validation. Missing page and size fall back to the defaults.
func searchInputFromQuery(c echo.Context) (*usecase.SearchContactInput, error) {
	query := c.QueryParams()
	input := &usecase.SearchContactInput{
		Page: usecase.DefaultSearchPage,
		Size: usecase.DefaultSearchSize,
	}

	optional := func(key string) *string {
		if !query.Has(key) {
			return nil
		}
		value := query.Get(key)

		return &value
	}
	input.Name = optional("name")
	input.Email = optional("email")
	input.Phone = optional("phone")

	for key, target := range map[string]*int{"page": &input.Page, "size": &input.Size} {
		if !query.Has(key) {
			continue
		}
		value, err := strconv.Atoi(query.Get(key))
		if err != nil {
			return nil, domainerrors.ErrInvalidRequestBody.WrapMessage(key + " must be an integer")
		}
		*target = value
	}

	return input, nil
}
