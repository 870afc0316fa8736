package repositories

//go:generate mockgen -source=topic_repository.go -destination=mocks/topic_repository.go -package=mocks

import (
	"context"

	"nc-news/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) error
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	err := r.db.WithContext(ctx).Order("slug").Find(&topics).Error
	return topics, err
}

func (r *topicRepository) Exists(ctx context.Context, slug string) error {
	return exists(ctx, r.db, "SELECT EXISTS (SELECT 1 FROM topics WHERE slug = ?)", slug)
}
