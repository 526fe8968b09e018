package tenant

import "gorm.io/gorm"

// Scope conjoins the caller's company into every query predicate. Every
// repository touching a tenant-owned table goes through this; a syntactically
// valid id belonging to another company matches zero rows.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
