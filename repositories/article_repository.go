package repositories

//go:generate mockgen -source=article_repository.go -destination=mocks/article_repository.go -package=mocks

import (
	"context"

	"nc-news/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const articleColumns = "articles.article_id, articles.title, articles.topic, articles.author, articles.body, " +
	"articles.created_at, articles.votes, articles.article_img_url"

type ArticleRepository interface {
	GetList(ctx context.Context, query models.ArticleQuery) ([]models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Exists(ctx context.Context, id int) error
	IncrementVotes(ctx context.Context, id int, delta int) (*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// withCommentCount selects articles joined to an aggregated count of their comments.
// The left join keeps articles without comments at a count of 0.
func (r *articleRepository) withCommentCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select(articleColumns + ", COUNT(comments.comment_id)::INT AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

func (r *articleRepository) GetList(ctx context.Context, query models.ArticleQuery) ([]models.Article, error) {
	articles := []models.Article{}

	q := r.withCommentCount(ctx)
	if query.Topic != "" {
		q = q.Where("articles.topic = ?", query.Topic)
	}

	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: query.Sort.Column(), Raw: true},
		Desc:   query.Order.Desc(),
	})

	err := q.Scan(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var articles []models.Article
	err := r.withCommentCount(ctx).
		Where("articles.article_id = ?", id).
		Scan(&articles).Error
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, models.NewNotFound()
	}
	return &articles[0], nil
}

func (r *articleRepository) Exists(ctx context.Context, id int) error {
	return exists(ctx, r.db, "SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = ?)", id)
}

func (r *articleRepository) IncrementVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	query := `
		WITH updated AS (
			UPDATE articles SET votes = votes + ? WHERE article_id = ? RETURNING *
		)
		SELECT
			updated.*,
			(SELECT COUNT(*) FROM comments WHERE comments.article_id = updated.article_id)::INT AS comment_count
		FROM updated
	`

	var articles []models.Article
	if err := r.db.WithContext(ctx).Raw(query, delta, id).Scan(&articles).Error; err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, models.NewNotFound()
	}
	return &articles[0], nil
}
