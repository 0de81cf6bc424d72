package model

import "time"

// AddressModel mirrors the 'addresses' table. ContactID references contacts.id with cascading delete.
type AddressModel struct {
	ID         string  `gorm:"type:varchar(100);primaryKey"`
	ContactID  string  `gorm:"column:contact_id;type:varchar(100);not null;index"`
	Street     *string `gorm:"type:varchar(255)"`
	City       *string `gorm:"type:varchar(100)"`
	Province   *string `gorm:"type:varchar(100)"`
	Country    string  `gorm:"type:varchar(100);not null"`
	PostalCode string  `gorm:"column:postal_code;type:varchar(10);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
