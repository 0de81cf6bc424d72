package postgres

import (
	"context"
	"strings"
	"time"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	"addressbook/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// Create persists a new contact.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		// The owner disappeared between authentication and insert.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthorized.WrapMessage("contact owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// FindByIDAndUsername retrieves a contact scoped to its owner.
func (repo *contactRepository) FindByIDAndUsername(ctx context.Context, id, username string) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Take(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find contact")
	}

	return toContactDomain(&contactM), nil
}

// Update replaces every mutable column. Nil optionals are stored as NULL.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ? AND username = ?", contact.ID, contact.Username).
		Updates(map[string]any{
			"first_name": contact.FirstName,
			"last_name":  nullableString(contact.LastName),
			"email":      nullableString(contact.Email),
			"phone":      nullableString(contact.Phone),
			"updated_at": now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	contact.UpdatedAt = now

	return nil
}

// Delete removes a contact scoped to its owner.
func (repo *contactRepository) Delete(ctx context.Context, id, username string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Search counts all matches, then loads one page ordered by creation time.
func (repo *contactRepository) Search(ctx context.Context, filter entity.ContactFilter) ([]*entity.Contact, int64, error) {
	scope := contactFilterScope(filter)

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ContactModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count contacts")
	}
	if total == 0 {
		return []*entity.Contact{}, 0, nil
	}

	var contactMs []model.ContactModel
	err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at ASC").
		Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&contactMs).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to search contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactMs))
	for i := range contactMs {
		contacts = append(contacts, toContactDomain(&contactMs[i]))
	}

	return contacts, total, nil
}

// contactFilterScope builds the owner scope plus the optional substring filters.
// Matching is case-sensitive; LIKE wildcards in user input match literally.
func contactFilterScope(filter entity.ContactFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("username = ?", filter.Username)

		if filter.Name != nil {
			pattern := containsPattern(*filter.Name)
			db = db.Where("(first_name LIKE ? OR last_name LIKE ?)", pattern, pattern)
		}
		if filter.Email != nil {
			db = db.Where("email LIKE ?", containsPattern(*filter.Email))
		}
		if filter.Phone != nil {
			db = db.Where("phone LIKE ?", containsPattern(*filter.Phone))
		}

		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps the term for a substring LIKE. Backslash is the PostgreSQL default escape.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
