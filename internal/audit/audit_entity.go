package audit

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ActorRole  string    `gorm:"type:varchar(50);not null"`
	Action     string    `gorm:"type:varchar(100);not null;index"`
	TargetType string    `gorm:"type:varchar(100)"`
	TargetID   string    `gorm:"type:varchar(100)"`
	Metadata   []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"not null;default:now();index"`
}

func (Entry) TableName() string {
	return "audit_log_entries"
}
