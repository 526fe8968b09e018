package certificate

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;not null;index"`
	TrainingRecordID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_certificate_record"`
	CertificateNumber string    `gorm:"type:varchar(50);not null"`
	EmployeeName      string    `gorm:"type:varchar(255);not null"`
	TrainingType      string    `gorm:"type:varchar(255);not null"`
	StandardRef       string    `gorm:"type:varchar(100)"`
	CompletedAt       time.Time `gorm:"not null"`
	IssuedAt          time.Time `gorm:"not null"`
	PDF               []byte    `gorm:"type:bytea;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Certificate) TableName() string {
	return "certificates"
}
