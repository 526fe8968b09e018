package billing

import (
	"time"

	"github.com/google/uuid"
)

const (
	OverrideNone            = "none"
	OverrideDiscountPercent = "discount_percent"
	OverrideFixedPrice      = "fixed_price"
	OverrideComped          = "comped"
)

// Override is a tenant-keyed singleton: at most one active override per
// company. Creating a new one replaces the previous row.
type Override struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_billing_override_company"`
	OverrideType    string    `gorm:"type:varchar(50);not null"`
	DiscountPercent *int
	FixedPriceCents *int64
	Note            string    `gorm:"type:text;not null"`
	StartsAt        time.Time `gorm:"not null"`
	EndsAt          *time.Time
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
}

func (Override) TableName() string {
	return "billing_overrides"
}

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Body      string    `gorm:"type:text;not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

func (Note) TableName() string {
	return "billing_notes"
}

func IsValidOverrideType(t string) bool {
	switch t {
	case OverrideNone, OverrideDiscountPercent, OverrideFixedPrice, OverrideComped:
		return true
	default:
		return false
	}
}
