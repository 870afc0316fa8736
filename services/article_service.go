package services

//go:generate mockgen -source=article_service.go -destination=mocks/article_service.go -package=mocks

import (
	"context"

	"nc-news/models"
	"nc-news/repositories"

	"golang.org/x/sync/errgroup"
)

type ArticleService interface {
	GetArticles(ctx context.Context, params models.ArticleListParams) ([]models.Article, error)
	GetArticle(ctx context.Context, id int) (*models.Article, error)
	UpdateArticleVotes(ctx context.Context, id int, incVotes int) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	topicRepo   repositories.TopicRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, topicRepo repositories.TopicRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
	}
}

func (s *articleService) GetArticles(ctx context.Context, params models.ArticleListParams) ([]models.Article, error) {
	query, err := models.ParseArticleListParams(params)
	if err != nil {
		return nil, err
	}

	// An empty listing is ambiguous on its own: the topic may exist without
	// articles, or not exist at all. The existence check runs alongside the
	// listing and the first failure wins.
	var articles []models.Article
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.articleRepo.GetList(gctx, query)
		return err
	})
	if query.Topic != "" {
		g.Go(func() error {
			return s.topicRepo.Exists(gctx, query.Topic)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// UpdateArticleVotes adds incVotes to the stored count. Negative results are kept as is.
func (s *articleService) UpdateArticleVotes(ctx context.Context, id int, incVotes int) (*models.Article, error) {
	return s.articleRepo.IncrementVotes(ctx, id, incVotes)
}
