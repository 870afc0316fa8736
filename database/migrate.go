package database

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates any missing table or index. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
