package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table. The primary key is the
// client-supplied category identifier, so a rename is a delete plus insert.
type CategoryModel struct {
	ID        string `gorm:"type:varchar(255);primary_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. CategoryID carries no
// storage-level foreign key; referential integrity is maintained by the
// catalog usecase.
type ProductModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string          `gorm:"type:varchar(255);not null"`
	CategoryID string          `gorm:"type:varchar(255);index"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
