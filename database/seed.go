package database

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"nc-news/models"

	"gorm.io/gorm"
)

//go:embed data/test_data.json
var testDataJSON []byte

type Dataset struct {
	Topics   []models.Topic   `json:"topics"`
	Users    []models.User    `json:"users"`
	Articles []models.Article `json:"articles"`
	Comments []models.Comment `json:"comments"`
}

// TestData decodes the embedded dataset.
func TestData() (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(testDataJSON, &ds); err != nil {
		return nil, fmt.Errorf("decode test data: %w", err)
	}
	return &ds, nil
}

// Seed empties every table, resets the id sequences and inserts ds in one
// transaction. Articles and comments get ids in dataset order, starting at 1.
func Seed(ctx context.Context, db *gorm.DB, ds *Dataset) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("truncate: %w", err)
		}

		if len(ds.Topics) > 0 {
			if err := tx.Create(&ds.Topics).Error; err != nil {
				return fmt.Errorf("insert topics: %w", err)
			}
		}
		if len(ds.Users) > 0 {
			if err := tx.Create(&ds.Users).Error; err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}
		if len(ds.Articles) > 0 {
			if err := tx.Omit("ArticleID").Create(&ds.Articles).Error; err != nil {
				return fmt.Errorf("insert articles: %w", err)
			}
		}
		if len(ds.Comments) > 0 {
			if err := tx.Omit("CommentID").Create(&ds.Comments).Error; err != nil {
				return fmt.Errorf("insert comments: %w", err)
			}
		}
		return nil
	})
}
