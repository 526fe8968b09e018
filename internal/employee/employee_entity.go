package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	LocationID *uuid.UUID `gorm:"type:uuid;index"`
	FullName   string     `gorm:"type:varchar(255);not null"`
	Email      string     `gorm:"type:varchar(255);not null"`
	JobTitle   string     `gorm:"type:varchar(150)"`
	Status     string     `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
