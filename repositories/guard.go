package repositories

import (
	"context"

	"nc-news/models"

	"gorm.io/gorm"
)

// exists runs a SELECT EXISTS point lookup and turns a miss into ErrorNotFound.
func exists(ctx context.Context, db *gorm.DB, query string, args ...interface{}) error {
	var found bool
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&found).Error; err != nil {
		return err
	}
	if !found {
		return models.NewNotFound()
	}
	return nil
}
