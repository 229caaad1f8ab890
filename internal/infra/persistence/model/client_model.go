package model

import "time"

// ClientModel mirrors the 'clients' table. Name, email and tax id are each unique.
type ClientModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	MainNumber string `gorm:"type:varchar(20);not null"`
	TaxID      string `gorm:"column:tax_id;type:varchar(14);uniqueIndex;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Addresses []AddressModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
