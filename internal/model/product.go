package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a row of the products table. Mutable attributes are nullable:
// callers may omit them and storage decides the stored value.
type Product struct {
	ID          int64               `json:"id"          db:"id"`
	Name        *string             `json:"name"        db:"name"`
	Description *string             `json:"description" db:"description"`
	Price       decimal.NullDecimal `json:"price"       db:"price"`
	Weight      decimal.NullDecimal `json:"weight"      db:"weight"`
	AgeGroup    *string             `json:"age_group"   db:"age_group"`
	BreedType   *string             `json:"breed_type"  db:"breed_type"`
	Category    *string             `json:"category"    db:"category"`
	ImageURL    *string             `json:"image_url"   db:"image_url"`
	CreatedAt   time.Time           `json:"created_at"  db:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at"  db:"updated_at"`
}
