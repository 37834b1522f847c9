package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// activeUniqueIndexes keep email and phone number unique among employees that
// have not been soft-deleted.
var activeUniqueIndexes = []struct {
	name   string
	column string
}{
	{"idx_employees_active_email", "email"},
	{"idx_employees_active_phone_number", "phone_number"},
}

// AddIndexes adds the partial unique indexes on employees. MySQL has no
// partial indexes, so there the service-level check is the only guard.
func AddIndexes(db *gorm.DB) error {
	dialect := db.Dialector.Name()
	if dialect != "postgres" && dialect != "sqlite" {
		log.Printf("Skipping partial unique indexes: not supported by %s", dialect)
		return nil
	}

	for _, idx := range activeUniqueIndexes {
		sql := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON employees (%s) WHERE is_deleted = false",
			idx.name, idx.column,
		)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
