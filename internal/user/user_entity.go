package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// RoleEmployee is a regular tenant member.
	RoleEmployee = "employee"
	// RoleAdmin is the tenant owner/admin.
	RoleAdmin = "admin"
	// RoleSuperAdmin is cross-tenant support; it has no company of its own.
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"` // nil for super admins
	Username  string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	FullName  string     `gorm:"type:varchar(255);not null"`
	Role      string     `gorm:"type:varchar(50);not null;default:'employee'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) CompanyIDString() string {
	if u.CompanyID == nil {
		return ""
	}
	return u.CompanyID.String()
}

// IsValidRole reports whether role is one of the three known roles. Roles are
// fixed at creation; there is no promotion flow.
func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
