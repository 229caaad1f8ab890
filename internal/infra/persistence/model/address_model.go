package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        uint   `gorm:"primaryKey"`
	ClientID  uint   `gorm:"not null;index:idx_addresses_on_client"`
	Street    string `gorm:"type:varchar(255);not null"`
	Number    string `gorm:"type:varchar(20);not null"`
	District  string `gorm:"type:varchar(100);not null"`
	City      string `gorm:"type:varchar(100);not null"`
	Zip       string `gorm:"type:varchar(10)"`
	Phone     string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
