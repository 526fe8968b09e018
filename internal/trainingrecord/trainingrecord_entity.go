package trainingrecord

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusCurrent = "current"
	StatusExpired = "expired"
)

type TrainingRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TrainingType string    `gorm:"type:varchar(255);not null"`
	StandardRef  string    `gorm:"type:varchar(100)"`
	Provider     string    `gorm:"type:varchar(255)"`
	CompletedAt  time.Time `gorm:"not null"`
	ExpiresAt    *time.Time
	Status       string `gorm:"type:varchar(50);not null;default:'current'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (TrainingRecord) TableName() string {
	return "training_records"
}

// RecordWithEmployee carries the owning employee's name for list views.
type RecordWithEmployee struct {
	TrainingRecord
	EmployeeName string
}
