package services

//go:generate mockgen -source=topic_service.go -destination=mocks/topic_service.go -package=mocks

import (
	"context"

	"nc-news/models"
	"nc-news/repositories"
)

type TopicService interface {
	GetTopics(ctx context.Context) ([]models.Topic, error)
}

type topicService struct {
	topicRepo repositories.TopicRepository
}

func NewTopicService(topicRepo repositories.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) GetTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.GetAll(ctx)
}
