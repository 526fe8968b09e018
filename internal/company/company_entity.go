package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlanTrial      = "trial"
	PlanStarter    = "starter"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

const (
	BillingStatusTrial    = "trial"
	BillingStatusActive   = "active"
	BillingStatusPastDue  = "past_due"
	BillingStatusCanceled = "canceled"
)

type Company struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                 string    `gorm:"type:varchar(150);not null"`
	Plan                 string    `gorm:"type:varchar(50);not null;default:'trial'"`
	BillingStatus        string    `gorm:"type:varchar(50);not null;default:'trial'"`
	TrialEndsAt          *time.Time
	OnboardingCompleted  bool   `gorm:"not null;default:false"`
	StripeCustomerID     string `gorm:"type:varchar(255)"`
	StripeSubscriptionID string `gorm:"type:varchar(255)"`
	Country              string `gorm:"type:varchar(100)"`
	State                string `gorm:"type:varchar(100)"`
	Phone                string `gorm:"type:varchar(50)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}

func IsValidPlan(plan string) bool {
	switch plan {
	case PlanTrial, PlanStarter, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

func IsValidBillingStatus(status string) bool {
	switch status {
	case BillingStatusTrial, BillingStatusActive, BillingStatusPastDue, BillingStatusCanceled:
		return true
	}
	return false
}
