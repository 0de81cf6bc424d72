package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"go.uber.org/fx"
)

type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	ids         service.IDGenerator
	validator   service.InputValidator
	sanitizer   service.TextSanitizer
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContactRepo repository.ContactRepository
	IDs         service.IDGenerator
	Validator   service.InputValidator
	Sanitizer   service.TextSanitizer
	Logger      *slog.Logger
}

// NewContactService creates the contact usecase.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:   params.TxManager,
		contactRepo: params.ContactRepo,
		ids:         params.IDs,
		validator:   params.Validator,
		sanitizer:   params.Sanitizer,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ContactMustExist returns the contact if username owns it, ErrContactNotFound otherwise.
func (srv *contactService) ContactMustExist(ctx context.Context, username, contactID string) (*entity.Contact, error) {
	return contactMustExist(ctx, srv.contactRepo, username, contactID)
}

// Create stores a new contact owned by user.
func (srv *contactService) Create(ctx context.Context, user *entity.User, input *usecase.CreateContactInput) (*entity.Contact, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	contact := &entity.Contact{
		ID:        srv.ids.NewID(),
		Username:  user.Username,
		FirstName: srv.sanitizer.Sanitize(input.FirstName),
		LastName:  sanitizeOptional(srv.sanitizer.Sanitize, input.LastName),
		Email:     sanitizeOptional(srv.sanitizer.Sanitize, input.Email),
		Phone:     sanitizeOptional(srv.sanitizer.Sanitize, input.Phone),
	}
	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create contact")
	}

	srv.log(ctx).Info("Contact created", slog.String("contactId", contact.ID))

	return contact, nil
}

// Get returns one of the user's contacts.
func (srv *contactService) Get(ctx context.Context, user *entity.User, input *usecase.ContactIDInput) (*entity.Contact, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	return contactMustExist(ctx, srv.contactRepo, user.Username, input.ContactID)
}

// Update replaces every field of the contact. Optional fields missing from input are cleared.
func (srv *contactService) Update(ctx context.Context, user *entity.User, input *usecase.UpdateContactInput) (*entity.Contact, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	existing, err := contactMustExist(ctx, srv.contactRepo, user.Username, input.ID)
	if err != nil {
		return nil, err
	}

	contact := &entity.Contact{
		ID:        existing.ID,
		Username:  existing.Username,
		FirstName: srv.sanitizer.Sanitize(input.FirstName),
		LastName:  sanitizeOptional(srv.sanitizer.Sanitize, input.LastName),
		Email:     sanitizeOptional(srv.sanitizer.Sanitize, input.Email),
		Phone:     sanitizeOptional(srv.sanitizer.Sanitize, input.Phone),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: existing.UpdatedAt,
	}
	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to update contact")
	}

	return contact, nil
}

// Delete removes the contact together with its addresses in one transaction.
func (srv *contactService) Delete(ctx context.Context, user *entity.User, input *usecase.ContactIDInput) error {
	if user == nil {
		return domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return err
	}

	var removedAddresses int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		if _, err := contactMustExist(ctx, contactRepo, user.Username, input.ContactID); err != nil {
			return err
		}

		removed, err := repoFactory.AddressRepo().DeleteByContactID(ctx, input.ContactID)
		if err != nil {
			return errors.Wrap(err, "failed to delete contact addresses")
		}
		removedAddresses = removed

		if err := contactRepo.Delete(ctx, input.ContactID, user.Username); err != nil {
			if errors.Is(err, repository.ErrContactNotFound) {
				return domainerrors.ErrContactNotFound
			}

			return errors.Wrap(err, "failed to delete contact")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Contact deleted",
		slog.String("contactId", input.ContactID),
		slog.Int64("removedAddresses", removedAddresses),
	)

	return nil
}

// Search returns one page of the user's contacts. A page past the end is empty but keeps its paging.
func (srv *contactService) Search(ctx context.Context, user *entity.User, input *usecase.SearchContactInput) (*usecase.SearchContactOutput, error) {
	if user == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	filter := entity.ContactFilter{
		Username: user.Username,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Offset:   searchOffset(input.Page, input.Size),
		Limit:    input.Size,
	}

	contacts, total, err := srv.contactRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	return &usecase.SearchContactOutput{
		Contacts: contacts,
		Paging: usecase.Paging{
			Page:      input.Page,
			Size:      input.Size,
			TotalPage: totalPages(total, input.Size),
			Total:     total,
		},
	}, nil
}

// searchOffset is (page-1)*size, saturated at math.MaxInt so a huge page lands past the
// last row instead of wrapping to a negative offset.
func searchOffset(page, size int) int {
	if page <= 1 || size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}

	return (page - 1) * size
}

// totalPages is ceil(total / size).
func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}

	return int((total + int64(size) - 1) / int64(size))
}
