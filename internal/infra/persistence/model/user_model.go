// Package model holds the GORM persistence models. They mirror the tables created by the migrations.
package model

import "time"

// UserModel mirrors the 'users' table. The username is the primary key.
type UserModel struct {
	Username  string  `gorm:"type:varchar(100);primaryKey"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Password  string  `gorm:"type:varchar(100);not null"`
	Token     *string `gorm:"type:varchar(100);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Contacts []ContactModel `gorm:"foreignKey:Username;references:Username"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
