package postgres

import (
	"context"
	"time"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address under its contact.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		// The parent contact was deleted after the ownership check.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrContactNotFound.WrapMessage("address parent contact does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindByIDAndContactID retrieves an address scoped to its contact.
func (repo *addressRepository) FindByIDAndContactID(ctx context.Context, id, contactID string) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		Take(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address")
	}

	return toAddressDomain(&addressM), nil
}

// FindByContactID lists every address of a contact, oldest first.
func (repo *addressRepository) FindByContactID(ctx context.Context, contactID string) ([]*entity.Address, error) {
	var addressMs []model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&addressMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list addresses")
	}

	addresses := make([]*entity.Address, 0, len(addressMs))
	for i := range addressMs {
		addresses = append(addresses, toAddressDomain(&addressMs[i]))
	}

	return addresses, nil
}

// Update replaces every mutable column. Nil optionals are stored as NULL.
func (repo *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ? AND contact_id = ?", address.ID, address.ContactID).
		Updates(map[string]any{
			"street":      nullableString(address.Street),
			"city":        nullableString(address.City),
			"province":    nullableString(address.Province),
			"country":     address.Country,
			"postal_code": address.PostalCode,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = now

	return nil
}

// Delete removes an address scoped to its contact.
func (repo *addressRepository) Delete(ctx context.Context, id, contactID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteByContactID removes all addresses of a contact.
func (repo *addressRepository) DeleteByContactID(ctx context.Context, contactID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact addresses")
	}

	return result.RowsAffected, nil
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		ContactID:  data.ContactID,
		Street:     data.Street,
		City:       data.City,
		Province:   data.Province,
		Country:    data.Country,
		PostalCode: data.PostalCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		ContactID:  data.ContactID,
		Street:     data.Street,
		City:       data.City,
		Province:   data.Province,
		Country:    data.Country,
		PostalCode: data.PostalCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
