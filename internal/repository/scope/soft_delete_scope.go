package scope

import "gorm.io/gorm"

// WithSoftDelete includes soft deleted rows in the query.
func WithSoftDelete(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
